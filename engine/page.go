package engine

import (
	"context"
	"strconv"

	"github.com/Konsultn-Engineering/litesql/ast"
	"github.com/Konsultn-Engineering/litesql/schema"
)

// PageResult is one page of a query. TotalPages, HasNext and HasPrev are
// computed from the stored fields on every read; there is nothing to keep
// in sync and nothing to mutate.
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// TotalPages is the strict ceiling of Total/Size: 0 for an empty set.
func (p *PageResult[T]) TotalPages() int64 {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + int64(p.Size) - 1) / int64(p.Size)
}

func (p *PageResult[T]) HasNext() bool {
	return int64(p.Page) < p.TotalPages()
}

func (p *PageResult[T]) HasPrev() bool {
	return p.Page > 1
}

// FetchPage runs base through sess as one page-sized slice: a count over
// the unsliced query first, then — only when the requested page can hold
// data — the sliced query itself. Page and size below 1 are clamped, never
// rejected; a page past the end returns empty items with the true total.
func FetchPage[T any](ctx context.Context, sess *Session, base *Query, page, size int) (*PageResult[T], error) {
	safePage := max(1, page)
	safeSize := max(1, size)

	raw, err := sess.Scalar(ctx, ast.CountOver(base.Stmt()))
	if err != nil {
		return nil, err
	}
	total := coerceCount(raw)

	// Overflow bound only: one "page" even when the set is empty, so the
	// comparison below stays well-defined. The record's own TotalPages
	// reports the strict ceiling instead.
	totalPages := int64(1)
	if total > 0 {
		totalPages = (total + int64(safeSize) - 1) / int64(safeSize)
	}

	if total == 0 || int64(safePage) > totalPages {
		return &PageResult[T]{Items: []T{}, Total: total, Page: safePage, Size: safeSize}, nil
	}

	offset := (safePage - 1) * safeSize
	res, err := sess.Execute(ctx, base.Slice(offset, safeSize).Stmt())
	if err != nil {
		return nil, err
	}

	mappings, err := res.Mappings()
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(mappings))
	for _, mapping := range mappings {
		item, err := schema.DecodeNew[T](mapping)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &PageResult[T]{Items: items, Total: total, Page: safePage, Size: safeSize}, nil
}

// coerceCount normalizes a driver's COUNT(*) scalar. Absent or
// unrecognized values count as zero, matching a count over no rows.
func coerceCount(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}
