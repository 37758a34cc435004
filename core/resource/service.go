// Package resource is the generic CRUD layer every entity package builds on.
package resource

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = core.ErrNotFound

// Entity is a record identified by an integer key.
type Entity interface {
	listing.Record
	ID() int
}

type (
	Repository[T Entity] interface {
		List(ctx context.Context) ([]T, error)
		Get(ctx context.Context, id int) (T, error)
		Create(ctx context.Context, rec T) (T, error)
		Update(ctx context.Context, id int, rec T) (T, error)
		Delete(ctx context.Context, id int) error
	}

	// Payload builds the record sent to the backend out of a validated form.
	Payload[T Entity] interface {
		Payload() T
	}

	Service[T Entity] struct {
		name        string
		repo        Repository[T]
		columns     []listing.Column
		searchTypes []listing.SearchType
		pageSize    int
	}
)

// NewService returns the service of the entity called name.
func NewService[T Entity](name string, repo Repository[T], columns []listing.Column, searchTypes []listing.SearchType) *Service[T] {
	return &Service[T]{
		name:        name,
		repo:        repo,
		columns:     columns,
		searchTypes: searchTypes,
		pageSize:    listing.DefaultPageSize,
	}
}

// WithPageSize overrides the default page size.
func (svc *Service[T]) WithPageSize(size int) *Service[T] {
	if size > 0 {
		svc.pageSize = size
	}
	return svc
}

func (svc *Service[T]) Name() string                      { return svc.name }
func (svc *Service[T]) Columns() []listing.Column         { return svc.columns }
func (svc *Service[T]) SearchTypes() []listing.SearchType { return svc.searchTypes }

// CleanQuery normalizes q against the entity's columns and search types.
func (svc *Service[T]) CleanQuery(q listing.Query) listing.Query {
	if q.PageSize <= 0 {
		q.PageSize = svc.pageSize
	}
	q.Clean(svc.columns, svc.searchTypes)
	return q
}

// Query fetches the whole collection and returns the page q asks for.
func (svc *Service[T]) Query(ctx context.Context, q listing.Query) (listing.Page[T], error) {
	all, err := svc.repo.List(ctx)
	if err != nil {
		return listing.Page[T]{}, errors.Wrapf(err, "listing %s", svc.name)
	}
	return listing.Apply(all, svc.CleanQuery(q)), nil
}

// View returns every record matching q, sorted, without pagination.
func (svc *Service[T]) View(ctx context.Context, q listing.Query) ([]T, error) {
	all, err := svc.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", svc.name)
	}
	q = svc.CleanQuery(q)
	view := listing.Filter(all, q.SearchBy, q.Search)
	if q.SortBy != "" {
		listing.Sort(view, q.SortBy, q.Desc)
	}
	return view, nil
}

func (svc *Service[T]) All(ctx context.Context) ([]T, error) {
	all, err := svc.repo.List(ctx)
	return all, errors.Wrapf(err, "listing %s", svc.name)
}

func (svc *Service[T]) Get(ctx context.Context, id int) (T, error) {
	rec, err := svc.repo.Get(ctx, id)
	return rec, errors.Wrapf(err, "getting %s %d", svc.name, id)
}

func (svc *Service[T]) Create(ctx context.Context, p Payload[T]) (T, error) {
	rec, err := svc.repo.Create(ctx, p.Payload())
	return rec, errors.Wrapf(err, "creating %s", svc.name)
}

func (svc *Service[T]) Update(ctx context.Context, id int, p Payload[T]) (T, error) {
	rec, err := svc.repo.Update(ctx, id, p.Payload())
	return rec, errors.Wrapf(err, "updating %s %d", svc.name, id)
}

func (svc *Service[T]) Delete(ctx context.Context, id int) error {
	return errors.Wrapf(svc.repo.Delete(ctx, id), "deleting %s %d", svc.name, id)
}

// Index maps each record of recs by its ID.
func Index[T Entity](recs []T) map[int]T {
	m := make(map[int]T, len(recs))
	for _, rec := range recs {
		m[rec.ID()] = rec
	}
	return m
}
