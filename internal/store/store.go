// Package store owns the canonical in-memory expense and category
// collections. It is the single writable source of truth: every mutation
// persists the affected collection to the key-value store and notifies all
// observers synchronously before returning.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Veraticus/spendwise/internal/model"
)

// Storage keys for the persisted collections.
const (
	keyExpenses   = "expenses"
	keyCategories = "categories"
)

// Store errors.
var (
	// ErrCategoryInUse is returned when deleting a category that at least
	// one expense still references by name.
	ErrCategoryInUse = errors.New("category is in use")
	// ErrNotHydrated is returned when reading before LoadOrSeed has run.
	ErrNotHydrated = errors.New("store not hydrated")
)

// KV is the durable key-value blob store the collections persist to.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Observer is called synchronously after every committed mutation.
type Observer func()

// Store holds the expense and category collections.
type Store struct {
	kv         KV
	logger     *slog.Logger
	expenses   []model.Expense
	categories []model.Category
	observers  []Observer
	mu         sync.RWMutex
	hydrated   bool
}

// New creates a Store backed by the given key-value store.
func New(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Hydrated reports whether LoadOrSeed has run. Consumers must not render
// collections before the store is hydrated.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Subscribe registers an observer notified after every mutation.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// LoadOrSeed reads both collections from persisted storage. A missing or
// empty collection is replaced by the built-in seed dataset. A corrupt blob
// is logged and leaves that collection empty; it is never an error for the
// caller. Runs once per session.
func (s *Store) LoadOrSeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}

	seedCats, seedExps := SeedDataset(model.Today())

	s.categories = loadCollection(ctx, s.kv, s.logger, keyCategories, seedCats)
	s.expenses = loadCollection(ctx, s.kv, s.logger, keyExpenses, seedExps)
	s.hydrated = true

	s.logger.Info("store hydrated",
		"expenses", len(s.expenses),
		"categories", len(s.categories))

	return nil
}

// loadCollection reads one collection, seeding it when absent or empty.
func loadCollection[T any](ctx context.Context, kv KV, logger *slog.Logger, key string, seed []T) []T {
	blob, found, err := kv.Get(ctx, key)
	if err != nil {
		logger.Error("failed to read persisted collection", "key", key, "error", err)
		return nil
	}

	if found {
		var records []T
		if err := json.Unmarshal(blob, &records); err != nil {
			logger.Error("persisted collection is corrupt, starting empty", "key", key, "error", err)
			return nil
		}
		if len(records) > 0 {
			return records
		}
	}

	// First run: adopt and persist the seed dataset.
	if err := persist(ctx, kv, key, seed); err != nil {
		logger.Error("failed to persist seed dataset", "key", key, "error", err)
	}
	logger.Info("seeded collection", "key", key, "count", len(seed))
	return seed
}

// Expenses returns a copy of the expense collection in storage order
// (newest first).
func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Categories returns a copy of the category collection in insertion order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Expense returns the expense with the given id.
func (s *Store) Expense(id string) (model.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

// Category returns the category with the given id.
func (s *Store) Category(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CategoryInUse reports whether any expense references the category name.
// Callers use this to disable category deletion in the UI; DeleteCategory
// re-validates at the store boundary regardless.
func (s *Store) CategoryInUse(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryInUseLocked(name)
}

func (s *Store) categoryInUseLocked(name string) bool {
	for _, e := range s.expenses {
		if e.Category == name {
			return true
		}
	}
	return false
}

// AddExpense validates the draft, assigns a unique id, prepends the record
// to the collection, and persists. The id is uuid-based so same-millisecond
// calls cannot collide.
func (s *Store) AddExpense(ctx context.Context, draft model.Expense) (model.Expense, error) {
	if err := draft.Validate(); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	draft.ID = newID("exp")
	s.expenses = append([]model.Expense{draft}, s.expenses...)
	s.persistExpenses(ctx)
	s.mu.Unlock()

	s.notify()

	s.logger.Info("added expense",
		"id", draft.ID,
		"category", draft.Category,
		"amount", draft.Amount.String())

	return draft, nil
}

// UpdateExpense replaces the record whose id matches. An unknown id is a
// no-op, not an error.
func (s *Store) UpdateExpense(ctx context.Context, expense model.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	for i, e := range s.expenses {
		if e.ID == expense.ID {
			s.expenses[i] = expense
			break
		}
	}
	s.persistExpenses(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// DeleteExpense removes the matching record if present; a no-op otherwise.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	s.persistExpenses(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddCategory assigns a unique id and appends the category. Unknown icon
// names are tolerated; they render with the default glyph.
func (s *Store) AddCategory(ctx context.Context, name, icon string) (model.Category, error) {
	cat := model.Category{Name: name, Icon: icon}
	if err := cat.Validate(); err != nil {
		return model.Category{}, err
	}

	s.mu.Lock()
	cat.ID = newID("cat")
	s.categories = append(s.categories, cat)
	s.persistCategories(ctx)
	s.mu.Unlock()

	s.notify()

	s.logger.Info("added category", "id", cat.ID, "name", cat.Name)
	return cat, nil
}

// DeleteCategory removes the category with the given id. A category that
// any expense still references by name cannot be deleted; deleting an
// unknown id is a no-op.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := -1
	for i, c := range s.categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}

	if s.categoryInUseLocked(s.categories[idx].Name) {
		name := s.categories[idx].Name
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrCategoryInUse, name)
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	s.persistCategories(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Reset replaces both collections with the built-in seed dataset and
// persists them.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	seedCats, seedExps := SeedDataset(model.Today())
	s.categories = seedCats
	s.expenses = seedExps
	s.hydrated = true
	s.persistCategories(ctx)
	s.persistExpenses(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// persistExpenses writes the whole expense collection. Write failures are
// logged; the in-memory state keeps the mutation for the rest of the
// session.
func (s *Store) persistExpenses(ctx context.Context) {
	if err := persist(ctx, s.kv, keyExpenses, s.expenses); err != nil {
		s.logger.Error("failed to persist expenses", "error", err)
	}
}

func (s *Store) persistCategories(ctx context.Context) {
	if err := persist(ctx, s.kv, keyCategories, s.categories); err != nil {
		s.logger.Error("failed to persist categories", "error", err)
	}
}

func persist[T any](ctx context.Context, kv KV, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, blob)
}

// notify invokes all observers synchronously.
func (s *Store) notify() {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o()
	}
}

// newID returns a prefixed unique identifier.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
