package queries

import (
	"context"

	"retreat-api/internal/pkg/errs"
)

var ErrContentNotFound = errs.New("content section not found")

type ContentSource interface {
	Site() map[string]any
	Section(name string) (any, error)
}

type ContentQueries interface {
	GetSite(ctx context.Context) (map[string]any, error)
	GetSection(ctx context.Context, name string) (any, error)
}

type contentQueriesImpl struct {
	source ContentSource
}

func NewContentQueries(source ContentSource) ContentQueries {
	return &contentQueriesImpl{source: source}
}

func (q *contentQueriesImpl) GetSite(_ context.Context) (map[string]any, error) {
	return q.source.Site(), nil
}

func (q *contentQueriesImpl) GetSection(_ context.Context, name string) (any, error) {
	section, err := q.source.Section(name)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return section, nil
}
