// Package memory provides an in-memory implementation of the host
// document port. It backs tests and the standalone CLI/TUI harness; inside
// the real host process the same port binds to the application's document
// API instead.
package memory

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
)

// Ensure Document implements the interface.
var _ driven.HostDocument = (*Document)(nil)

// PlacedInstance records a committed image placement.
type PlacedInstance struct {
	// Type is the imported image type backing this instance.
	Type domain.ImageTypeID

	// SheetID is the sheet the instance was placed on.
	SheetID string

	// Spec is the placed footprint.
	Spec domain.PlacementSpec
}

// Document is an in-memory host document. Mutations are only possible
// through RunTransaction and commit atomically: a transaction that fails
// part-way leaves the document exactly as it was.
type Document struct {
	mu         sync.RWMutex
	sheets     map[string]domain.Sheet
	attrs      map[string]map[string]string
	activeID   string
	imageTypes map[domain.ImageTypeID]string
	instances  map[domain.ImageInstanceID]PlacedInstance

	// placeErr, when set, makes the next PlaceImage call fail. Used to
	// simulate host API failures mid-transaction.
	placeErr error
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		sheets:     make(map[string]domain.Sheet),
		attrs:      make(map[string]map[string]string),
		imageTypes: make(map[domain.ImageTypeID]string),
		instances:  make(map[domain.ImageInstanceID]PlacedInstance),
	}
}

// AddSheet adds a sheet with its attributes. The first sheet added becomes
// the active sheet.
func (d *Document) AddSheet(sheet domain.Sheet, attrs map[string]string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sheets[sheet.ID] = sheet
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	d.attrs[sheet.ID] = copied
	if d.activeID == "" {
		d.activeID = sheet.ID
	}
}

// SetActive marks the given sheet as active.
func (d *Document) SetActive(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activeID = id
}

// FailPlacements injects err into the next PlaceImage call, simulating a
// host failure after a successful import. Pass nil to clear.
func (d *Document) FailPlacements(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.placeErr = err
}

// ActiveSheet returns the active sheet.
func (d *Document) ActiveSheet(_ context.Context) (*domain.Sheet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	sheet, ok := d.sheets[d.activeID]
	if !ok {
		return nil, domain.ErrSheetNotFound
	}
	copied := sheet
	return &copied, nil
}

// Sheet returns the sheet with the given ID.
func (d *Document) Sheet(_ context.Context, id string) (*domain.Sheet, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	sheet, ok := d.sheets[id]
	if !ok {
		return nil, domain.ErrSheetNotFound
	}
	copied := sheet
	return &copied, nil
}

// SheetAttribute reads a named attribute, returning empty for missing
// names per the port contract.
func (d *Document) SheetAttribute(_ context.Context, sheetID, name string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attrs, ok := d.attrs[sheetID]
	if !ok {
		return "", domain.ErrSheetNotFound
	}
	return attrs[name], nil
}

// RunTransaction executes fn against a staged view of the document.
// Staged mutations become visible only after fn returns nil.
func (d *Document) RunTransaction(_ context.Context, _ string, fn func(tx driven.HostTransaction) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tx := &transaction{
		doc:       d,
		types:     make(map[domain.ImageTypeID]string),
		instances: make(map[domain.ImageInstanceID]PlacedInstance),
	}

	if err := fn(tx); err != nil {
		// Staged state is discarded wholesale.
		return err
	}

	for id, path := range tx.types {
		d.imageTypes[id] = path
	}
	for id, inst := range tx.instances {
		d.instances[id] = inst
	}
	return nil
}

// ImageTypeCount returns the number of committed image types.
func (d *Document) ImageTypeCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.imageTypes)
}

// InstanceCount returns the number of committed placed instances.
func (d *Document) InstanceCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.instances)
}

// Instance returns a committed placement by handle.
func (d *Document) Instance(id domain.ImageInstanceID) (PlacedInstance, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	inst, ok := d.instances[id]
	return inst, ok
}

// transaction stages mutations until the enclosing RunTransaction commits.
type transaction struct {
	doc       *Document
	types     map[domain.ImageTypeID]string
	instances map[domain.ImageInstanceID]PlacedInstance
}

// ImportImage stages a new image type. The backing file must exist, as the
// real host reads it during import.
func (t *transaction) ImportImage(path string) (domain.ImageTypeID, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("reading image file: %w", err)
	}

	id := domain.ImageTypeID(uuid.NewString())
	t.types[id] = path
	return id, nil
}

// PlaceImage stages a placed instance of a staged or committed image type.
func (t *transaction) PlaceImage(typeID domain.ImageTypeID, sheetID string, spec domain.PlacementSpec) (domain.ImageInstanceID, error) {
	if t.doc.placeErr != nil {
		err := t.doc.placeErr
		t.doc.placeErr = nil
		return "", err
	}

	if _, staged := t.types[typeID]; !staged {
		if _, committed := t.doc.imageTypes[typeID]; !committed {
			return "", fmt.Errorf("unknown image type %s", typeID)
		}
	}
	if _, ok := t.doc.sheets[sheetID]; !ok {
		return "", domain.ErrSheetNotFound
	}

	id := domain.ImageInstanceID(uuid.NewString())
	t.instances[id] = PlacedInstance{Type: typeID, SheetID: sheetID, Spec: spec}
	return id, nil
}
