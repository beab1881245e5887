package services

import (
	"strings"
	"time"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// Schema field names, used in validation messages and the payload contract.
const (
	FieldName      = "name"
	FieldSheetName = "sheetName"
	FieldRevision  = "revision"
	FieldDate      = "date"
	FieldCheckedBy = "checkedBy"
)

const reasonRequired = "must not be empty"

// dateReason names both accepted layouts in user-facing terms.
const reasonBadDate = "must match dd/MM/yy or dd/MM/yyyy"

// ValidateMetadata checks the metadata fields in fixed schema order
// (name, sheetName, revision, date, checkedBy) and fails fast on the first
// offending field. Values are checked after whitespace trimming but are
// never normalised: what the user typed is what gets encoded.
func ValidateMetadata(meta domain.SheetMetadata) error {
	fields := []struct {
		name  string
		value string
	}{
		{FieldName, meta.Name},
		{FieldSheetName, meta.SheetName},
		{FieldRevision, meta.Revision},
		{FieldDate, meta.Date},
		{FieldCheckedBy, meta.CheckedBy},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &domain.FieldError{Field: f.name, Reason: reasonRequired}
		}
	}

	if !validDate(meta.Date) {
		return &domain.FieldError{Field: FieldDate, Reason: reasonBadDate}
	}

	return nil
}

// validDate reports whether s matches one of the accepted layouts exactly.
// time.Parse alone accepts unpadded digits, so the parsed time is formatted
// back and compared to reject forms like "5/1/25".
func validDate(s string) bool {
	for _, layout := range []string{domain.DateLayoutShort, domain.DateLayoutLong} {
		t, err := time.Parse(layout, s)
		if err == nil && t.Format(layout) == s {
			return true
		}
	}
	return false
}
