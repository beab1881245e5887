package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/config/memory"
	hostmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/host/memory"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/storage/tempfile"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// stubRenderer returns fixed bytes and records the text it was given.
type stubRenderer struct {
	png      []byte
	blocks   string
	err      error
	lastText string
	lastECC  domain.ECCLevel
	lastSize int
}

func (s *stubRenderer) Render(text string, level domain.ECCLevel, sizePx int) ([]byte, error) {
	s.lastText = text
	s.lastECC = level
	s.lastSize = sizePx
	if s.err != nil {
		return nil, s.err
	}
	return s.png, nil
}

func (s *stubRenderer) RenderBlocks(text string, level domain.ECCLevel) (string, error) {
	s.lastText = text
	s.lastECC = level
	if s.err != nil {
		return "", s.err
	}
	return s.blocks, nil
}

type stampFixture struct {
	service  *StampService
	renderer *stubRenderer
	doc      *hostmemory.Document
	tempDir  string
}

func newStampFixture(t *testing.T) *stampFixture {
	t.Helper()

	doc := hostmemory.NewDocument()
	doc.AddSheet(domain.Sheet{
		ID:   "sheet-1",
		Name: "Ground Floor Plan",
		Outline: domain.Rect{
			Min: domain.Point{X: 0, Y: 0},
			Max: domain.Point{X: 4, Y: 3},
		},
	}, nil)

	renderer := &stubRenderer{png: []byte("stub-png-bytes"), blocks: "##\n##"}
	tempDir := t.TempDir()
	store := tempfile.NewStore(tempDir, nil)

	return &stampFixture{
		service:  NewStampService(renderer, doc, store, NewPlanner(), NewSettingsService(configmemory.NewConfigStore()), nil),
		renderer: renderer,
		doc:      doc,
		tempDir:  tempDir,
	}
}

func tempFileCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestStampService_Payload(t *testing.T) {
	fx := newStampFixture(t)

	payload, err := fx.service.Payload(validMetadata())
	require.NoError(t, err)
	assert.Contains(t, payload, `"v":2`)

	_, err = fx.service.Payload(domain.SheetMetadata{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStampService_Generate(t *testing.T) {
	fx := newStampFixture(t)

	artifact, err := fx.service.Generate(context.Background(), validMetadata())

	require.NoError(t, err)
	assert.Equal(t, []byte("stub-png-bytes"), artifact.PNG)
	assert.Equal(t, artifact.Payload, fx.renderer.lastText)
	// Defaults flow from settings to the renderer.
	assert.Equal(t, domain.ECCQuartile, fx.renderer.lastECC)
	assert.Equal(t, 300, fx.renderer.lastSize)
}

func TestStampService_Generate_RendererFailureIsEncodingError(t *testing.T) {
	fx := newStampFixture(t)
	fx.renderer.err = domain.ErrEncoding

	_, err := fx.service.Generate(context.Background(), validMetadata())

	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestStampService_Preview(t *testing.T) {
	fx := newStampFixture(t)

	blocks, err := fx.service.Preview(context.Background(), validMetadata())

	require.NoError(t, err)
	assert.Equal(t, "##\n##", blocks)
}

func TestStampService_SaveTo_WritesExactRendererBytes(t *testing.T) {
	fx := newStampFixture(t)
	path := filepath.Join(t.TempDir(), "out", "stamp.png")

	meta := domain.SheetMetadata{
		Name:      "A-101",
		SheetName: "Proj",
		Revision:  "B",
		Date:      "01/01/24",
		CheckedBy: "JD",
	}
	require.NoError(t, fx.service.SaveTo(context.Background(), meta, path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("stub-png-bytes"), written)
	assert.Equal(t,
		`{"v":2,"name":"A-101","sheetName":"Proj","revision":"B","date":"01/01/24","checkedBy":"JD"}`,
		fx.renderer.lastText)
}

func TestStampService_SaveTo_InvalidMetadataWritesNothing(t *testing.T) {
	fx := newStampFixture(t)
	path := filepath.Join(t.TempDir(), "stamp.png")

	err := fx.service.SaveTo(context.Background(), domain.SheetMetadata{}, path)

	assert.ErrorIs(t, err, domain.ErrValidation)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStampService_Stamp_CommitsTypeAndInstance(t *testing.T) {
	fx := newStampFixture(t)

	result, err := fx.service.Stamp(context.Background(), validMetadata(), "sheet-1", domain.PolicyQuadrantOffset)

	require.NoError(t, err)
	require.NotEmpty(t, result.Instance)
	assert.InDelta(t, 1.0, result.Spec.Anchor.X, 1e-9)
	assert.InDelta(t, 2.25, result.Spec.Anchor.Y, 1e-9)

	assert.Equal(t, 1, fx.doc.ImageTypeCount())
	assert.Equal(t, 1, fx.doc.InstanceCount())

	placed, ok := fx.doc.Instance(result.Instance)
	require.True(t, ok)
	assert.Equal(t, "sheet-1", placed.SheetID)

	// The staging temp file is gone once the operation finishes.
	assert.Zero(t, tempFileCount(t, fx.tempDir))
}

func TestStampService_Stamp_PlacementFailureRollsBack(t *testing.T) {
	fx := newStampFixture(t)
	hostErr := errors.New("element creation rejected")
	fx.doc.FailPlacements(hostErr)

	_, err := fx.service.Stamp(context.Background(), validMetadata(), "sheet-1", domain.PolicyQuadrantOffset)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHostInsertion)
	assert.ErrorIs(t, err, hostErr)

	// Rollback: the imported type did not survive the failed placement.
	assert.Zero(t, fx.doc.ImageTypeCount())
	assert.Zero(t, fx.doc.InstanceCount())

	// Temp file removed on the failure path too.
	assert.Zero(t, tempFileCount(t, fx.tempDir))
}

func TestStampService_Stamp_UnknownSheet(t *testing.T) {
	fx := newStampFixture(t)

	_, err := fx.service.Stamp(context.Background(), validMetadata(), "no-such-sheet", domain.PolicyQuadrantOffset)

	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
	assert.Zero(t, fx.doc.ImageTypeCount())
}

func TestStampService_Stamp_InvalidMetadataNeverTouchesHost(t *testing.T) {
	fx := newStampFixture(t)

	_, err := fx.service.Stamp(context.Background(), domain.SheetMetadata{}, "sheet-1", domain.PolicyQuadrantOffset)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, fx.doc.ImageTypeCount())
	assert.Zero(t, tempFileCount(t, fx.tempDir))
}
