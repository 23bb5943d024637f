package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/blaisecz/health-tracker/internal/domain"
)

// SaveStatus describes what a Save call did.
type SaveStatus int

const (
	// SaveCreated means the record was appended as a new entry.
	SaveCreated SaveStatus = iota
	// SaveUpdated means an existing record with the same id was replaced.
	SaveUpdated
	// SaveReplacedDay means a manual record of the same variant on the
	// same calendar day was replaced after the caller acknowledged the
	// collision.
	SaveReplacedDay
	// SaveNeedsConfirmation means a daily-uniqueness collision was found
	// and nothing was written. The caller confirms with the user and
	// re-invokes Save with overwrite=true.
	SaveNeedsConfirmation
)

// SaveResult is the outcome of a Save call. Existing is populated for
// SaveNeedsConfirmation so the caller can show what would be replaced.
type SaveResult struct {
	Status   SaveStatus
	Existing *domain.Record
}

// RecordStore owns the authoritative record collection and mirrors every
// mutation to its persistence slot before returning. Public method bodies
// are serialized by a mutex; there is no background flush.
type RecordStore struct {
	mu      sync.Mutex
	slot    Slot
	records []domain.Record
}

// New constructs a store and rehydrates it from the slot. A read failure
// or corrupt payload yields an empty collection with a logged warning,
// never an error.
func New(ctx context.Context, slot Slot) *RecordStore {
	s := &RecordStore{slot: slot}

	data, err := slot.Load(ctx)
	if err != nil {
		log.Printf("record store: failed to load slot, starting empty: %v", err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("record store: corrupt slot payload, starting empty: %v", err)
		return s
	}
	records, skipped := decodeRecords(raw)
	if skipped > 0 {
		log.Printf("record store: skipped %d invalid stored records", skipped)
	}
	s.records = records
	return s
}

// Save applies the identity and merge rules:
//
//  1. A record with the same id is replaced in place (edit).
//  2. A manual weight or sleep record collides with an existing manual
//     record of the same variant, userId, and calendar day; without
//     overwrite the collision is reported and nothing changes, with
//     overwrite the colliding record's slot is replaced.
//  3. Otherwise the record is appended.
//
// The whole collection is persisted before returning; on persistence
// failure the in-memory state is left unchanged.
func (s *RecordStore) Save(ctx context.Context, rec domain.Record, overwrite bool) (SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == rec.ID {
			return s.replaceAt(ctx, i, rec, SaveUpdated)
		}
	}

	if (rec.Kind == domain.KindWeight || rec.Kind == domain.KindSleep) && !rec.ExternallySourced() {
		for i := range s.records {
			existing := s.records[i]
			if existing.Kind == rec.Kind &&
				existing.UserID == rec.UserID &&
				!existing.ExternallySourced() &&
				domain.SameCalendarDay(existing.Date, rec.Date) {
				if !overwrite {
					found := existing.Clone()
					return SaveResult{Status: SaveNeedsConfirmation, Existing: &found}, nil
				}
				return s.replaceAt(ctx, i, rec, SaveReplacedDay)
			}
		}
	}

	next := make([]domain.Record, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)
	if err := s.persist(ctx, next); err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Status: SaveCreated}, nil
}

func (s *RecordStore) replaceAt(ctx context.Context, i int, rec domain.Record, status SaveStatus) (SaveResult, error) {
	next := make([]domain.Record, len(s.records))
	copy(next, s.records)
	next[i] = rec
	if err := s.persist(ctx, next); err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Status: status}, nil
}

// Records returns a defensive copy of the collection.
func (s *RecordStore) Records(ctx context.Context) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Delete removes the record with the given id. A missing id is a logged
// no-op; the slot is rewritten only when a removal occurred.
func (s *RecordStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.ID != id {
			next = append(next, rec)
		}
	}
	if len(next) == len(s.records) {
		log.Printf("record store: delete: id %q not found", id)
		return false, nil
	}
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// OverwriteAll replaces the entire collection with the reconstructable
// subset of the candidates. Invalid candidates are skipped, never fatal;
// a persistence failure leaves the previous collection intact.
func (s *RecordStore) OverwriteAll(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, skipped := decodeRecords(candidates)
	if err := s.persist(ctx, records); err != nil {
		return domain.ImportSummary{}, err
	}
	if skipped > 0 {
		log.Printf("record store: import skipped %d invalid candidates", skipped)
	}
	return domain.ImportSummary{Imported: len(records), Skipped: skipped}, nil
}

// Export returns the verbatim serialized store contents, the same bytes
// the slot holds.
func (s *RecordStore) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeRecords(s.records)
}

// persist writes next to the slot and commits it to memory only on
// success, so callers never observe state that storage does not hold.
func (s *RecordStore) persist(ctx context.Context, next []domain.Record) error {
	data, err := encodeRecords(next)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.slot.Store(ctx, data); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	s.records = next
	return nil
}
