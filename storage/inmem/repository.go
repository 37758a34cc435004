// Package inmem keeps collections in process memory. It backs tests and demo runs.
package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/resource"
)

// Table is a mutex-protected collection keyed by ID.
type Table[T resource.Entity] struct {
	mutex   sync.RWMutex
	rows    map[int]T
	pkCount int
	setID   func(rec T, id int) T
	onWrite func(rec T) T
}

// NewTable returns an empty table. setID stamps the generated primary key on created records.
func NewTable[T resource.Entity](setID func(rec T, id int) T, rows ...T) *Table[T] {
	tbl := &Table[T]{rows: make(map[int]T, len(rows)), setID: setID}
	for _, row := range rows {
		if _, err := tbl.Create(context.Background(), row); err != nil {
			panic(err)
		}
	}
	return tbl
}

// OnWrite sets a function completing records before they are stored, e.g. read-only joined fields.
func (tbl *Table[T]) OnWrite(fn func(rec T) T) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()
	tbl.onWrite = fn
}

func (tbl *Table[T]) complete(rec T) T {
	if tbl.onWrite != nil {
		return tbl.onWrite(rec)
	}
	return rec
}

// query returns the rows ordered by ID, as a backend would.
func (tbl *Table[T]) query() []T {
	rows := make([]T, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID() < rows[j].ID() })
	return rows
}

func (tbl *Table[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()
	return tbl.query(), nil
}

func (tbl *Table[T]) Get(ctx context.Context, id int) (T, error) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if row, ok := tbl.rows[id]; ok {
		return row, nil
	}
	var zero T
	return zero, core.ErrNotFound
}

// Create keeps an explicit ID and otherwise assigns the next one.
func (tbl *Table[T]) Create(ctx context.Context, rec T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	id := rec.ID()
	if id == 0 {
		tbl.pkCount++
		id = tbl.pkCount
		rec = tbl.setID(rec, id)
	} else if id > tbl.pkCount {
		tbl.pkCount = id
	}
	rec = tbl.complete(rec)
	tbl.rows[id] = rec
	return rec, nil
}

func (tbl *Table[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if _, ok := tbl.rows[id]; !ok {
		var zero T
		return zero, core.ErrNotFound
	}
	rec = tbl.complete(tbl.setID(rec, id))
	tbl.rows[id] = rec
	return rec, nil
}

func (tbl *Table[T]) Delete(ctx context.Context, id int) error {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if _, ok := tbl.rows[id]; !ok {
		return core.ErrNotFound
	}
	delete(tbl.rows, id)
	return nil
}

// Len returns the number of rows.
func (tbl *Table[T]) Len() int {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()
	return len(tbl.rows)
}
