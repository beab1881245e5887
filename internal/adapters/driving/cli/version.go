package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the qrstamp version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("qrstamp %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
