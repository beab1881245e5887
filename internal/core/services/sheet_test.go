package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hostmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/host/memory"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
)

func newHostWithSheet(attrs map[string]string) *hostmemory.Document {
	doc := hostmemory.NewDocument()
	doc.AddSheet(domain.Sheet{
		ID:   "sheet-1",
		Name: "Ground Floor Plan",
		Outline: domain.Rect{
			Min: domain.Point{X: 0, Y: 0},
			Max: domain.Point{X: 4, Y: 3},
		},
	}, attrs)
	return doc
}

func TestSheetService_Extract_AllAttributes(t *testing.T) {
	doc := newHostWithSheet(map[string]string{
		domain.AttrSheetNumber:     "A-101",
		domain.AttrSheetName:       "Ground Floor Plan",
		domain.AttrCurrentRevision: "B",
		domain.AttrIssueDate:       "01/01/24",
		domain.AttrCheckedBy:       "JD",
	})
	service := NewSheetService(doc, nil)

	meta, err := service.Extract(context.Background(), "sheet-1")

	require.NoError(t, err)
	assert.Equal(t, domain.SheetMetadata{
		Name:      "A-101",
		SheetName: "Ground Floor Plan",
		Revision:  "B",
		Date:      "01/01/24",
		CheckedBy: "JD",
	}, meta)
}

func TestSheetService_Extract_MissingAttributesFallBackEmpty(t *testing.T) {
	doc := newHostWithSheet(map[string]string{
		domain.AttrSheetNumber: "A-101",
		domain.AttrIssueDate:   "01/01/24",
	})
	service := NewSheetService(doc, nil)

	meta, err := service.Extract(context.Background(), "sheet-1")

	require.NoError(t, err)
	assert.Equal(t, "A-101", meta.Name)
	assert.Empty(t, meta.SheetName)
	assert.Empty(t, meta.Revision)
	assert.Empty(t, meta.CheckedBy)
}

func TestSheetService_Extract_EmptyDateDefaultsToToday(t *testing.T) {
	doc := newHostWithSheet(map[string]string{
		domain.AttrSheetNumber: "A-101",
	})
	service := NewSheetService(doc, nil)
	service.now = func() time.Time {
		return time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)
	}

	meta, err := service.Extract(context.Background(), "sheet-1")

	require.NoError(t, err)
	assert.Equal(t, "07/03/2024", meta.Date)
}

func TestSheetService_Extract_UnknownSheet(t *testing.T) {
	service := NewSheetService(hostmemory.NewDocument(), nil)

	_, err := service.Extract(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
}

func TestSheetService_Active(t *testing.T) {
	doc := newHostWithSheet(nil)
	service := NewSheetService(doc, nil)

	sheet, err := service.Active(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sheet-1", sheet.ID)
}

// flakyAttrHost fails attribute reads to exercise the degrade-to-empty path.
type flakyAttrHost struct {
	driven.HostDocument
}

func (f *flakyAttrHost) SheetAttribute(context.Context, string, string) (string, error) {
	return "", errors.New("parameter storage corrupt")
}

func TestSheetService_Extract_UnreadableAttributesDegradeToEmpty(t *testing.T) {
	doc := newHostWithSheet(nil)
	service := NewSheetService(&flakyAttrHost{HostDocument: doc}, nil)
	service.now = func() time.Time {
		return time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC)
	}

	meta, err := service.Extract(context.Background(), "sheet-1")

	require.NoError(t, err)
	assert.Empty(t, meta.Name)
	assert.Equal(t, "07/03/2024", meta.Date, "date still falls back to today")
}
