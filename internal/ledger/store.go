// Package ledger holds the balance book as the single source of truth:
// four entity collections with CRUD operations, write-through persistence,
// and startup rehydration.
package ledger

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/interfaces"
	"github.com/varlikapp/varlik/internal/models"
	"github.com/varlikapp/varlik/internal/storage/badger"
)

// BookKey is the single fixed storage key for the serialized balance book.
const BookKey = "balance_book"

// writeTimeout bounds each background persistence write.
const writeTimeout = 10 * time.Second

// Store holds the in-memory balance book. Every mutation computes the next
// state atomically under the lock, then schedules one fire-and-forget write
// of the full snapshot; write errors are logged, never surfaced, and the
// in-memory mutation stands regardless. Reads therefore always reflect every
// completed mutation, even when durability silently failed.
type Store struct {
	mu   sync.Mutex
	book models.BalanceBook
	seq  uint64 // persistence generation, increments per mutation

	kv     interfaces.KeyValueStorage
	logger *common.Logger

	writeMu    sync.Mutex
	writtenSeq uint64
	pending    sync.WaitGroup
}

// NewStore creates an empty store backed by the given key-value storage.
func NewStore(kv interfaces.KeyValueStorage, logger *common.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Load rehydrates the book from storage. Any failure (missing key, corrupt
// payload, schema mismatch) is logged and leaves the default empty state;
// callers never see an error.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, BookKey)
	if err != nil {
		if badger.IsNotFound(err) {
			s.logger.Debug().Msg("No persisted balance book, starting empty")
		} else {
			s.logger.Warn().Err(err).Msg("Failed to load balance book, starting empty")
		}
		return
	}

	var env models.BookEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.logger.Warn().Err(err).Msg("Corrupt balance book payload, starting empty")
		return
	}
	if env.Version != models.BookSchemaVersion {
		s.logger.Warn().
			Int("found", env.Version).
			Int("want", models.BookSchemaVersion).
			Msg("Balance book schema mismatch, starting empty")
		return
	}

	s.mu.Lock()
	s.book = env.State
	s.mu.Unlock()

	s.logger.Info().
		Int("assets", len(env.State.Assets)).
		Int("liabilities", len(env.State.Liabilities)).
		Int("receivables", len(env.State.Receivables)).
		Int("installments", len(env.State.Installments)).
		Msg("Balance book loaded")
}

// Book returns a copy of the current balance book.
func (s *Store) Book() models.BalanceBook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Clone()
}

// --- Assets ---

// AddAsset stores the asset under a freshly generated id, discarding any
// caller-supplied id, and returns the stored entity.
func (s *Store) AddAsset(a models.Asset) models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	s.book.Assets = append(s.book.Assets, a)
	s.persistLocked()
	return a
}

// UpdateAsset applies a partial update to the asset with the given id.
// Unknown ids are a silent no-op.
func (s *Store) UpdateAsset(id string, patch models.AssetPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Assets {
		if s.book.Assets[i].ID == id {
			s.book.Assets[i] = patch.Apply(s.book.Assets[i])
			s.persistLocked()
			return
		}
	}
}

// RemoveAsset deletes the asset with the given id. Unknown ids are a no-op.
func (s *Store) RemoveAsset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Assets {
		if s.book.Assets[i].ID == id {
			s.book.Assets = append(s.book.Assets[:i], s.book.Assets[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// --- Liabilities ---

// AddLiability stores the liability under a freshly generated id and returns
// the stored entity.
func (s *Store) AddLiability(l models.Liability) models.Liability {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = uuid.NewString()
	s.book.Liabilities = append(s.book.Liabilities, l)
	s.persistLocked()
	return l
}

// UpdateLiability applies a partial update; unknown ids are a silent no-op.
func (s *Store) UpdateLiability(id string, patch models.LiabilityPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Liabilities {
		if s.book.Liabilities[i].ID == id {
			s.book.Liabilities[i] = patch.Apply(s.book.Liabilities[i])
			s.persistLocked()
			return
		}
	}
}

// RemoveLiability deletes by id; unknown ids are a no-op.
func (s *Store) RemoveLiability(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Liabilities {
		if s.book.Liabilities[i].ID == id {
			s.book.Liabilities = append(s.book.Liabilities[:i], s.book.Liabilities[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// --- Receivables ---

// AddReceivable stores the receivable under a freshly generated id and
// returns the stored entity.
func (s *Store) AddReceivable(r models.Receivable) models.Receivable {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	s.book.Receivables = append(s.book.Receivables, r)
	s.persistLocked()
	return r
}

// UpdateReceivable applies a partial update; unknown ids are a silent no-op.
func (s *Store) UpdateReceivable(id string, patch models.ReceivablePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Receivables {
		if s.book.Receivables[i].ID == id {
			s.book.Receivables[i] = patch.Apply(s.book.Receivables[i])
			s.persistLocked()
			return
		}
	}
}

// RemoveReceivable deletes by id; unknown ids are a no-op.
func (s *Store) RemoveReceivable(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Receivables {
		if s.book.Receivables[i].ID == id {
			s.book.Receivables = append(s.book.Receivables[:i], s.book.Receivables[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// --- Installments ---

// AddInstallment stores the installment under a freshly generated id and
// returns the stored entity.
func (s *Store) AddInstallment(i models.Installment) models.Installment {
	s.mu.Lock()
	defer s.mu.Unlock()
	i.ID = uuid.NewString()
	s.book.Installments = append(s.book.Installments, i)
	s.persistLocked()
	return i
}

// UpdateInstallment applies a partial update; unknown ids are a silent no-op.
func (s *Store) UpdateInstallment(id string, patch models.InstallmentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Installments {
		if s.book.Installments[i].ID == id {
			s.book.Installments[i] = patch.Apply(s.book.Installments[i])
			s.persistLocked()
			return
		}
	}
}

// RemoveInstallment deletes by id; unknown ids are a no-op.
func (s *Store) RemoveInstallment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.book.Installments {
		if s.book.Installments[i].ID == id {
			s.book.Installments = append(s.book.Installments[:i], s.book.Installments[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// persistLocked schedules a write of the full current state. Caller must hold
// s.mu. Writes may complete out of order; the generation check below skips a
// write that has been superseded by one that already landed, so storage
// converges on the newest snapshot.
func (s *Store) persistLocked() {
	s.seq++
	seq := s.seq
	snapshot := s.book.Clone()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		data, err := json.Marshal(models.BookEnvelope{
			Version: models.BookSchemaVersion,
			State:   snapshot,
		})
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to serialize balance book")
			return
		}

		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if seq < s.writtenSeq {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := s.kv.Set(ctx, BookKey, string(data)); err != nil {
			s.logger.Error().Err(err).Msg("Failed to persist balance book")
			return
		}
		s.writtenSeq = seq
	}()
}

// Flush blocks until all scheduled persistence writes have finished. Used at
// shutdown and in tests; normal mutations never wait on it.
func (s *Store) Flush() {
	s.pending.Wait()
}
