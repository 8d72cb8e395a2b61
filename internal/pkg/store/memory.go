package store

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// ReadTx exposes the entity collections to a read-only callback
type ReadTx interface {
	Load(id string) (*models.Load, error)
	Loads() []*models.Load
	Driver(id string) (*models.Driver, error)
	Drivers() []*models.Driver
	VehicleType(name string) (models.VehicleType, bool)
	VehicleTypes() []models.VehicleType
	Lanes() []models.Lane
	Segments() []string
	CommissionRules() []models.CommissionRule
}

// Tx exposes the entity collections to a mutating callback. Records returned
// by a Tx are the canonical ones: changes to them are the change.
type Tx interface {
	ReadTx
	InsertLoad(load *models.Load)
	NextLoadID() string
	InsertDriver(driver *models.Driver)
	NewDriverID() string
	AddSegment(name string) bool
	RemoveSegment(name string) bool
}

// Store is the entity store every usecase reads and writes through
type Store interface {
	View(ctx context.Context, fn func(tx ReadTx) error) error
	Update(ctx context.Context, fn func(tx Tx) error) error
}

type state struct {
	loads     []*models.Load
	drivers   []*models.Driver
	reference models.ReferenceData
	loadSeq   int
}

// MemoryStore keeps every record in process memory behind one lock
type MemoryStore struct {
	mu    sync.RWMutex
	state state
}

// NewMemoryStore builds a store from seed records. Loads and drivers keep the
// given order.
func NewMemoryStore(reference models.ReferenceData, drivers []*models.Driver, loads []*models.Load) *MemoryStore {
	s := &MemoryStore{}
	s.state.reference = cloneReference(reference)
	for _, d := range drivers {
		s.state.drivers = append(s.state.drivers, d.Clone())
	}
	for _, l := range loads {
		s.state.loads = append(s.state.loads, l.Clone())
		if n, err := strconv.Atoi(l.ID); err == nil && n > s.state.loadSeq {
			s.state.loadSeq = n
		}
	}
	if s.state.loadSeq == 0 {
		s.state.loadSeq = 1000
	}
	return s
}

// View runs fn under the read lock
func (s *MemoryStore) View(ctx context.Context, fn func(tx ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&memTx{st: &s.state})
}

// Update runs fn under the write lock. If fn fails every change it made is
// rolled back, so a command either applies completely or not at all.
func (s *MemoryStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&memTx{st: &s.state}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (st *state) clone() state {
	c := state{
		loads:     make([]*models.Load, len(st.loads)),
		drivers:   make([]*models.Driver, len(st.drivers)),
		reference: cloneReference(st.reference),
		loadSeq:   st.loadSeq,
	}
	for i, l := range st.loads {
		c.loads[i] = l.Clone()
	}
	for i, d := range st.drivers {
		c.drivers[i] = d.Clone()
	}
	return c
}

func cloneReference(r models.ReferenceData) models.ReferenceData {
	return models.ReferenceData{
		VehicleTypes:    append([]models.VehicleType(nil), r.VehicleTypes...),
		Lanes:           append([]models.Lane(nil), r.Lanes...),
		Segments:        append([]string(nil), r.Segments...),
		CommissionRules: append([]models.CommissionRule(nil), r.CommissionRules...),
	}
}

type memTx struct {
	st *state
}

func (tx *memTx) Load(id string) (*models.Load, error) {
	for _, l := range tx.st.loads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, models.ErrLoadNotFound
}

func (tx *memTx) Loads() []*models.Load {
	out := make([]*models.Load, len(tx.st.loads))
	copy(out, tx.st.loads)
	return out
}

func (tx *memTx) Driver(id string) (*models.Driver, error) {
	for _, d := range tx.st.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, models.ErrDriverNotFound
}

func (tx *memTx) Drivers() []*models.Driver {
	out := make([]*models.Driver, len(tx.st.drivers))
	copy(out, tx.st.drivers)
	return out
}

func (tx *memTx) VehicleType(name string) (models.VehicleType, bool) {
	for _, vt := range tx.st.reference.VehicleTypes {
		if vt.Name == name {
			return vt, true
		}
	}
	return models.VehicleType{}, false
}

func (tx *memTx) VehicleTypes() []models.VehicleType {
	return append([]models.VehicleType(nil), tx.st.reference.VehicleTypes...)
}

func (tx *memTx) Lanes() []models.Lane {
	return append([]models.Lane(nil), tx.st.reference.Lanes...)
}

func (tx *memTx) Segments() []string {
	return append([]string(nil), tx.st.reference.Segments...)
}

func (tx *memTx) CommissionRules() []models.CommissionRule {
	return append([]models.CommissionRule(nil), tx.st.reference.CommissionRules...)
}

// InsertLoad puts the load at the front of the book
func (tx *memTx) InsertLoad(load *models.Load) {
	tx.st.loads = append([]*models.Load{load}, tx.st.loads...)
}

func (tx *memTx) NextLoadID() string {
	tx.st.loadSeq++
	return strconv.Itoa(tx.st.loadSeq)
}

func (tx *memTx) InsertDriver(driver *models.Driver) {
	tx.st.drivers = append(tx.st.drivers, driver)
}

// NewDriverID returns an unused id of the form D + four upper-case characters
func (tx *memTx) NewDriverID() string {
	for {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		id := "D" + strings.ToUpper(raw[:4])
		if _, err := tx.Driver(id); err != nil {
			return id
		}
	}
}

func (tx *memTx) AddSegment(name string) bool {
	for _, s := range tx.st.reference.Segments {
		if s == name {
			return false
		}
	}
	tx.st.reference.Segments = append(tx.st.reference.Segments, name)
	return true
}

func (tx *memTx) RemoveSegment(name string) bool {
	for i, s := range tx.st.reference.Segments {
		if s == name {
			tx.st.reference.Segments = append(tx.st.reference.Segments[:i:i], tx.st.reference.Segments[i+1:]...)
			return true
		}
	}
	return false
}
