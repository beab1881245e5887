package domain

// Well-known sheet attribute names used for metadata auto-extraction.
// These mirror the host application's built-in sheet parameters.
const (
	AttrSheetNumber     = "Sheet Number"
	AttrSheetName       = "Sheet Name"
	AttrCurrentRevision = "Current Revision"
	AttrIssueDate       = "Sheet Issue Date"
	AttrCheckedBy       = "Checked By"
)

// Sheet is a drawing sheet in the host document: an identity, a title and
// a drawable outline. Attributes are read through the host port, not held
// here, because the host owns them and they can change between reads.
type Sheet struct {
	// ID is the host's element identifier for the sheet.
	ID string

	// Name is the sheet title, for display.
	Name string

	// Outline is the drawable bounding rectangle, in feet.
	Outline Rect
}
