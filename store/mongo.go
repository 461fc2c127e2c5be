package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mongochef/errs"
)

// Mongo is a Repository over one collection. Uniqueness relies on the
// unique index created by db.EnsureIndexes.
type Mongo[T any, PT DocPtr[T]] struct {
	coll *mongo.Collection
	opts Options
}

// NewMongo builds a repository for coll.
func NewMongo[T any, PT DocPtr[T]](coll *mongo.Collection, opts Options) *Mongo[T, PT] {
	return &Mongo[T, PT]{coll: coll, opts: opts}
}

func (m *Mongo[T, PT]) FindByKey(ctx context.Context, key string) (*T, error) {
	var doc T
	err := m.coll.FindOne(ctx, bson.M{m.opts.KeyField: m.opts.key(key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, m.opts.notFound()
	}
	if err != nil {
		return nil, m.internal("find", err)
	}
	return &doc, nil
}

func (m *Mongo[T, PT]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, m.opts.notFound()
	}
	if err != nil {
		return nil, m.internal("find", err)
	}
	return &doc, nil
}

func (m *Mongo[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: m.opts.KeyField, Value: 1}})
	cursor, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, m.internal("list", err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, m.internal("decode", err)
	}
	if len(docs) == 0 {
		return nil, m.opts.empty()
	}
	return docs, nil
}

func (m *Mongo[T, PT]) Insert(ctx context.Context, doc *T) (*T, error) {
	p := PT(doc)
	if p.GetID().IsZero() {
		p.SetID(primitive.NewObjectID())
	}
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, m.opts.conflict(err)
		}
		return nil, m.internal("insert", err)
	}
	return doc, nil
}

func (m *Mongo[T, PT]) Save(ctx context.Context, doc *T) (*T, error) {
	p := PT(doc)
	res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": p.GetID()}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, m.opts.conflict(err)
		}
		return nil, m.internal("save", err)
	}
	if res.MatchedCount == 0 {
		return nil, m.opts.notFound()
	}
	return doc, nil
}

func (m *Mongo[T, PT]) Delete(ctx context.Context, key string) (*T, error) {
	var doc T
	err := m.coll.FindOneAndDelete(ctx, bson.M{m.opts.KeyField: m.opts.key(key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, m.opts.notFound()
	}
	if err != nil {
		return nil, m.internal("delete", err)
	}
	return &doc, nil
}

func (m *Mongo[T, PT]) internal(op string, err error) error {
	return errs.Wrap(errs.CodeInternal, fmt.Sprintf("%s %s", op, m.coll.Name()), err)
}
