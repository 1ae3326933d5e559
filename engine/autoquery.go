package engine

import (
	"context"

	"github.com/Konsultn-Engineering/litesql/schema"
)

// FilterFunc is the caller-supplied step that attaches filter clauses to a
// projected base query.
type FilterFunc func(*Query) *Query

// AutoQuery composes the projected base query for model M with the caller's
// filter step, executes it, and decodes every row into shape S. It is the
// explicit higher-order form of "build, filter, run, map".
func AutoQuery[M, S any](ctx context.Context, sess *Session, filter FilterFunc) ([]S, error) {
	q, err := SelectFor[M, S]()
	if err != nil {
		return nil, err
	}
	if filter != nil {
		q = filter(q)
	}

	res, err := sess.Execute(ctx, q.Stmt())
	if err != nil {
		return nil, err
	}
	mappings, err := res.Mappings()
	if err != nil {
		return nil, err
	}

	items := make([]S, 0, len(mappings))
	for _, mapping := range mappings {
		item, err := schema.DecodeNew[S](mapping)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// AutoQueryOne is AutoQuery reduced to the first matching row; nil when no
// row matched.
func AutoQueryOne[M, S any](ctx context.Context, sess *Session, filter FilterFunc) (*S, error) {
	q, err := SelectFor[M, S]()
	if err != nil {
		return nil, err
	}
	if filter != nil {
		q = filter(q)
	}

	res, err := sess.Execute(ctx, q.Stmt())
	if err != nil {
		return nil, err
	}

	row, ok := res.First()
	if !ok {
		return nil, nil
	}

	item, err := schema.DecodeNew[S](row.AsMap())
	if err != nil {
		return nil, err
	}
	return &item, nil
}
