package domain

import "time"

// Date layouts accepted for the issue date field. Dates are parsed
// locale-invariantly; any other ordering (e.g. ISO 8601) is rejected.
const (
	// DateLayoutLong is the canonical dd/MM/yyyy form. New metadata
	// defaults its date to today in this layout.
	DateLayoutLong = "02/01/2006"

	// DateLayoutShort is the accepted two-digit-year dd/MM/yy form.
	DateLayoutShort = "02/01/06"
)

// PayloadVersion is the current canonical payload schema version.
// The payload is a compatibility contract with downstream scanners:
// bumping it means deployed scanners must learn the new form.
const PayloadVersion = 2

// SheetMetadata holds the five drawing fields embedded in a stamp.
//
// The field set, order and spelling are fixed: earlier revisions of this
// tool disagreed on which slot carried "sheet name" versus "revision", so
// the schema below is the single versioned contract. Values are carried
// into the payload exactly as entered; validation rejects rather than
// normalises.
type SheetMetadata struct {
	// Name is the drawing number (e.g. "A-101").
	Name string

	// SheetName is the sheet title.
	SheetName string

	// Revision is the current revision mark.
	Revision string

	// Date is the issue date, in DateLayoutLong or DateLayoutShort form.
	Date string

	// CheckedBy identifies who checked the drawing.
	CheckedBy string
}

// NewSheetMetadata returns metadata with every field empty except Date,
// which defaults to the current date in the canonical layout.
func NewSheetMetadata() SheetMetadata {
	return NewSheetMetadataAt(time.Now())
}

// NewSheetMetadataAt is NewSheetMetadata with an explicit clock, for tests.
func NewSheetMetadataAt(now time.Time) SheetMetadata {
	return SheetMetadata{Date: now.Format(DateLayoutLong)}
}
