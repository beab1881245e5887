package services

import (
	"encoding/json"
	"fmt"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// payloadV2 is the wire form of the canonical payload: compact JSON in
// fixed field order, led by a schema version tag. This is what downstream
// scanners parse, so the key names and order are a contract.
type payloadV2 struct {
	Version   int    `json:"v"`
	Name      string `json:"name"`
	SheetName string `json:"sheetName"`
	Revision  string `json:"revision"`
	Date      string `json:"date"`
	CheckedBy string `json:"checkedBy"`
}

// EncodePayload returns the canonical text for the metadata: deterministic,
// byte-identical across calls for equal input, with quotes, backslashes and
// control characters escaped by the JSON encoding. The round trip through
// DecodePayload recovers all five fields exactly.
func EncodePayload(meta domain.SheetMetadata) (string, error) {
	b, err := json.Marshal(payloadV2{
		Version:   domain.PayloadVersion,
		Name:      meta.Name,
		SheetName: meta.SheetName,
		Revision:  meta.Revision,
		Date:      meta.Date,
		CheckedBy: meta.CheckedBy,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return string(b), nil
}

// DecodePayload parses canonical text back into metadata. Text that is not
// valid JSON or does not carry the current schema version fails with
// domain.ErrPayloadSchema.
func DecodePayload(text string) (domain.SheetMetadata, error) {
	var p payloadV2
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return domain.SheetMetadata{}, fmt.Errorf("%w: %v", domain.ErrPayloadSchema, err)
	}
	if p.Version != domain.PayloadVersion {
		return domain.SheetMetadata{}, fmt.Errorf("%w: version %d", domain.ErrPayloadSchema, p.Version)
	}
	return domain.SheetMetadata{
		Name:      p.Name,
		SheetName: p.SheetName,
		Revision:  p.Revision,
		Date:      p.Date,
		CheckedBy: p.CheckedBy,
	}, nil
}

// EncodeLegacyPayload returns the v1 pipe-delimited payload form, kept for
// scanners that predate the JSON schema. The round trip is lossy when a
// field value contains the " | " delimiter; that is an accepted limitation
// of the legacy form, not something to silently repair.
func EncodeLegacyPayload(meta domain.SheetMetadata) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		meta.Name, meta.SheetName, meta.Revision, meta.Date, meta.CheckedBy)
}
