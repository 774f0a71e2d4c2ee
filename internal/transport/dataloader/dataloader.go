// Package dataloader provides per-request DataLoaders that batch lookups
// made while rendering a response into single SQL calls. Loaders call
// repositories directly; callers have already passed the project access check.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type languageRepo interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Language, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Language languageRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	// LanguagesByID yields nil for languages that no longer exist.
	LanguagesByID *dataloader.Loader[int64, *domain.Language]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		LanguagesByID: dataloader.NewBatchedLoader(
			newLanguagesBatchFn(repos.Language),
			dataloader.WithWait[int64, *domain.Language](wait),
			dataloader.WithBatchCapacity[int64, *domain.Language](maxBatch),
		),
	}
}

func newLanguagesBatchFn(repo languageRepo) dataloader.BatchFunc[int64, *domain.Language] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Language] {
		langs, err := repo.ListByIDs(ctx, keys)
		if err != nil {
			err = fmt.Errorf("load languages: %w", err)
			results := make([]*dataloader.Result[*domain.Language], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Language]{Error: err}
			}
			return results
		}

		byID := make(map[int64]*domain.Language, len(langs))
		for i := range langs {
			byID[langs[i].ID] = &langs[i]
		}

		results := make([]*dataloader.Result[*domain.Language], len(keys))
		for i, id := range keys {
			results[i] = &dataloader.Result[*domain.Language]{Data: byID[id]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, nil when absent.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
