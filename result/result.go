package result

import "iter"

// Kind tags what an execution actually produced.
type Kind uint8

const (
	// KindRowSet holds zero or more rows from a read statement.
	KindRowSet Kind = iota
	// KindScalar holds a single opaque value.
	KindScalar
	// KindAffected holds a mutation's affected-row count.
	KindAffected
)

// Result normalizes the outcome of one executed statement behind a single
// access contract. Whatever the statement produced — rows, a scalar, or an
// affected-row count — is stored as a row sequence at construction and
// never changed afterwards, so a Result is safe to share between readers.
type Result struct {
	kind     Kind
	rows     []Row
	affected int64
}

// FromRows builds a row-set result. The slice is owned by the Result from
// this point on.
func FromRows(rows []Row) *Result {
	return &Result{kind: KindRowSet, rows: rows}
}

// FromValue builds a scalar result, normalized to a one-element row
// sequence. A nil value means absence and yields an empty result.
func FromValue(value any) *Result {
	r := &Result{kind: KindScalar}
	if value != nil {
		r.rows = []Row{NewRow([]string{"value"}, []any{value})}
	}
	return r
}

// FromAffected builds a mutation result carrying the affected-row count,
// exposed through the row accessors as a single synthetic row.
func FromAffected(n int64) *Result {
	return &Result{
		kind:     KindAffected,
		affected: n,
		rows:     []Row{NewRow([]string{"rows_affected"}, []any{n})},
	}
}

// Empty builds a result with no rows and no value.
func Empty() *Result {
	return &Result{kind: KindRowSet}
}

func (r *Result) Kind() Kind {
	return r.kind
}

// Affected reports the mutation count and whether this result came from a
// mutation at all.
func (r *Result) Affected() (int64, bool) {
	if r.kind != KindAffected {
		return 0, false
	}
	return r.affected, true
}

// All returns every stored row. An empty result yields an empty slice,
// never an error.
func (r *Result) All() []Row {
	return r.rows
}

// First returns the first row, or ok=false when the result is empty.
func (r *Result) First() (Row, bool) {
	if len(r.rows) == 0 {
		return Row{}, false
	}
	return r.rows[0], true
}

// One returns the single row. It fails with ErrNoResult on zero rows and
// with *MultipleResultsError on two or more.
func (r *Result) One() (Row, error) {
	switch n := len(r.rows); {
	case n == 0:
		return Row{}, ErrNoResult
	case n > 1:
		return Row{}, &MultipleResultsError{Count: n}
	}
	return r.rows[0], nil
}

// OneOrNone returns the single row when zero or one is present (ok reports
// presence) and fails with *MultipleResultsError on two or more.
func (r *Result) OneOrNone() (Row, bool, error) {
	switch n := len(r.rows); {
	case n == 0:
		return Row{}, false, nil
	case n > 1:
		return Row{}, false, &MultipleResultsError{Count: n}
	}
	return r.rows[0], true, nil
}

// Scalar returns the first column of the first row, or nil when the result
// is empty or the first row has no columns. It never fails.
func (r *Result) Scalar() any {
	if len(r.rows) == 0 || r.rows[0].Len() == 0 {
		return nil
	}
	return r.rows[0].Get(0)
}

// ScalarOneOrNone is OneOrNone reduced to the first column; nil when no row
// is present, *MultipleResultsError when more than one is.
func (r *Result) ScalarOneOrNone() (any, error) {
	row, ok, err := r.OneOrNone()
	if err != nil {
		return nil, err
	}
	if !ok || row.Len() == 0 {
		return nil, nil
	}
	return row.Get(0), nil
}

// Scalars returns a view of the result dropped to the first column of every
// row, in row order. The view shares the Result's storage.
func (r *Result) Scalars() *ScalarResult {
	values := make([]any, 0, len(r.rows))
	for _, row := range r.rows {
		if row.Len() > 0 {
			values = append(values, row.Get(0))
		} else {
			values = append(values, nil)
		}
	}
	return &ScalarResult{values: values}
}

// Mappings converts every row to a column-name keyed mapping, in row order.
// Results built from a scalar or mutation outcome have no named columns, so
// asking for mappings on them is a typed failure rather than a silently
// wrong answer.
func (r *Result) Mappings() ([]map[string]any, error) {
	if r.kind != KindRowSet {
		return nil, ErrNotRowSet
	}
	mappings := make([]map[string]any, len(r.rows))
	for i, row := range r.rows {
		mappings[i] = row.AsMap()
	}
	return mappings, nil
}

// Iter iterates the stored rows in original order. The sequence is
// restartable: the backing rows live as long as the Result does.
func (r *Result) Iter() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range r.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// ScalarResult is a first-column projection of a Result.
type ScalarResult struct {
	values []any
}

func (s *ScalarResult) All() []any {
	return s.values
}

func (s *ScalarResult) First() (any, bool) {
	if len(s.values) == 0 {
		return nil, false
	}
	return s.values[0], true
}

func (s *ScalarResult) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}
