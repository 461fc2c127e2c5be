// Package store holds the entity repositories. Each repository enforces
// uniqueness on one key field, normalized through its KeyFunc before every
// comparison and write.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongochef/errs"
)

// Document is implemented by every stored entity.
type Document interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
	UniqueKey() string
}

// Cloner is implemented by documents holding slices, so the in-memory
// store can hand out copies that share nothing with its own state.
type Cloner[T any] interface {
	Clone() *T
}

// KeyFunc canonicalizes a lookup key.
type KeyFunc func(string) string

// Repository is the contract shared by the Mongo store and the in-memory fake.
type Repository[T any] interface {
	// FindByKey fails with errs.CodeNotFound when nothing matches.
	FindByKey(ctx context.Context, key string) (*T, error)
	// FindByID fails with errs.CodeNotFound when nothing matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	// ListAll fails with errs.CodeNotFound when the collection is empty.
	ListAll(ctx context.Context) ([]T, error)
	// Insert assigns an id when missing and fails with errs.CodeConflict on
	// a duplicate key.
	Insert(ctx context.Context, doc *T) (*T, error)
	// Save replaces an existing document by id.
	Save(ctx context.Context, doc *T) (*T, error)
	// Delete removes the document and returns its prior value.
	Delete(ctx context.Context, key string) (*T, error)
}

// Options describe one entity collection.
type Options struct {
	// Entity is the display name used in messages, e.g. "Kitchen tool".
	Entity string
	// Plural is used when a listing is empty, e.g. "kitchen tools".
	Plural string
	// KeyField is the BSON field holding the unique key.
	KeyField string
	// Key canonicalizes keys; nil means verbatim.
	Key KeyFunc
}

func (o Options) key(s string) string {
	if o.Key == nil {
		return s
	}
	return o.Key(s)
}

func (o Options) notFound() error {
	return errs.Newf(errs.CodeNotFound, "%s not found", o.Entity)
}

func (o Options) empty() error {
	return errs.Newf(errs.CodeNotFound, "No %s found", o.Plural)
}

func (o Options) conflict(cause error) error {
	return errs.Wrap(errs.CodeConflict, fmt.Sprintf("%s already exists", o.Entity), cause)
}

// DocPtr lets generic code call Document methods on *T.
type DocPtr[T any] interface {
	*T
	Document
}
