package analysis

import "context"

// Repo defines persistence operations for analyses. Every read and delete is
// scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	ListByUser(ctx context.Context, userID string) ([]Analysis, error)
	LatestByUser(ctx context.Context, userID string) (Analysis, error)
	Delete(ctx context.Context, analysisID, userID string) error
}
