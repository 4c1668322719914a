package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"candidate-search/internal/database"
	"candidate-search/internal/models"
	"candidate-search/internal/review"
)

// AcceptedKey is the fixed key holding the accepted candidate list
const AcceptedKey = "potentialCandidates"

// DBStorage manages all storage operations using SQLite
type DBStorage struct {
	DB     *database.DB
	KVRepo *database.KVRepository
}

// NewDBStorage creates a new database storage
func NewDBStorage(dbPath string) (*DBStorage, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	return &DBStorage{
		DB:     db,
		KVRepo: database.NewKVRepository(db),
	}, nil
}

// Close closes the database connection
func (ds *DBStorage) Close() error {
	return ds.DB.Close()
}

// KV is the key-value surface the candidate storage needs
type KV interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// CandidateStorage persists the accepted candidate list
type CandidateStorage struct {
	kv KV
}

// NewCandidateStorage creates a CandidateStorage on top of kv
func NewCandidateStorage(kv KV) *CandidateStorage {
	return &CandidateStorage{kv: kv}
}

// Persist overwrites the stored list with the full accepted sequence
func (cs *CandidateStorage) Persist(ctx context.Context, accepted []models.Candidate) error {
	if accepted == nil {
		accepted = []models.Candidate{}
	}
	encoded, err := json.Marshal(accepted)
	if err != nil {
		return fmt.Errorf("failed to encode accepted candidates: %w", err)
	}
	return cs.kv.Set(ctx, AcceptedKey, string(encoded))
}

// LoadAccepted reads the stored list back. A missing entry is an empty list.
func (cs *CandidateStorage) LoadAccepted(ctx context.Context) ([]models.Candidate, error) {
	value, found, err := cs.kv.Get(ctx, AcceptedKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Candidate{}, nil
	}

	var accepted []models.Candidate
	if err := json.Unmarshal([]byte(value), &accepted); err != nil {
		return nil, fmt.Errorf("failed to decode accepted candidates: %w", err)
	}
	return accepted, nil
}

// Clear removes the stored list
func (cs *CandidateStorage) Clear(ctx context.Context) error {
	return cs.kv.Delete(ctx, AcceptedKey)
}

// Sink receives the accepted list whenever it changes
type Sink interface {
	Persist(ctx context.Context, accepted []models.Candidate) error
}

// PersistAccepted returns an observer that writes the accepted list to sink
// after every transition that changed it. Failures are logged only.
func PersistAccepted(ctx context.Context, sink Sink, logger *zap.Logger) review.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(prev, next review.State) {
		if !review.AcceptedChanged(prev, next) {
			return
		}
		if err := sink.Persist(ctx, next.Accepted()); err != nil {
			logger.Error("failed to persist accepted candidates", zap.Int("count", next.AcceptedLen()), zap.Error(err))
			return
		}
		logger.Debug("accepted candidates persisted", zap.Int("count", next.AcceptedLen()))
	}
}
