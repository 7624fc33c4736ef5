package analysis

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use. It
// backs dev environments without a database and the handler tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string][]Analysis)}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[analysis.UserID] = append(r.byUser[analysis.UserID], analysis)
	return nil
}

// ListByUser returns the user's analyses, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.byUser[userID]
	r.mu.RUnlock()

	out := make([]Analysis, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// LatestByUser returns the newest analysis for the user.
func (r *MemoryRepo) LatestByUser(ctx context.Context, userID string) (Analysis, error) {
	analyses, err := r.ListByUser(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	if len(analyses) == 0 {
		return Analysis{}, ErrNotFound
	}
	return analyses[0], nil
}

// Delete removes the analysis if it belongs to the user.
func (r *MemoryRepo) Delete(ctx context.Context, analysisID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byUser[userID]
	for i := range stored {
		if stored[i].ID == analysisID {
			r.byUser[userID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
