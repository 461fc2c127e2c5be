package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Repository with the same contract as Mongo.
// Documents are copied in and out so callers never alias stored state;
// types with slice fields implement Cloner to get a deep copy.
type Memory[T any, PT DocPtr[T]] struct {
	mu   sync.RWMutex
	opts Options
	docs map[primitive.ObjectID]T
}

// NewMemory builds an empty in-memory repository.
func NewMemory[T any, PT DocPtr[T]](opts Options) *Memory[T, PT] {
	return &Memory[T, PT]{opts: opts, docs: make(map[primitive.ObjectID]T)}
}

func (m *Memory[T, PT]) FindByKey(_ context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id, ok := m.lookup(m.opts.key(key)); ok {
		doc := m.docs[id]
		return m.copyOf(&doc), nil
	}
	return nil, m.opts.notFound()
}

func (m *Memory[T, PT]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, m.opts.notFound()
	}
	return m.copyOf(&doc), nil
}

func (m *Memory[T, PT]) ListAll(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.docs) == 0 {
		return nil, m.opts.empty()
	}
	docs := make([]T, 0, len(m.docs))
	for _, doc := range m.docs {
		docs = append(docs, *m.copyOf(&doc))
	}
	sort.Slice(docs, func(i, j int) bool {
		return PT(&docs[i]).UniqueKey() < PT(&docs[j]).UniqueKey()
	})
	return docs, nil
}

func (m *Memory[T, PT]) Insert(_ context.Context, doc *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := PT(doc)
	if _, taken := m.lookup(p.UniqueKey()); taken {
		return nil, m.opts.conflict(nil)
	}
	if p.GetID().IsZero() {
		p.SetID(primitive.NewObjectID())
	}
	if _, taken := m.docs[p.GetID()]; taken {
		return nil, m.opts.conflict(nil)
	}
	m.docs[p.GetID()] = *m.copyOf(doc)
	return doc, nil
}

func (m *Memory[T, PT]) Save(_ context.Context, doc *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := PT(doc)
	if _, ok := m.docs[p.GetID()]; !ok {
		return nil, m.opts.notFound()
	}
	if id, taken := m.lookup(p.UniqueKey()); taken && id != p.GetID() {
		return nil, m.opts.conflict(nil)
	}
	m.docs[p.GetID()] = *m.copyOf(doc)
	return doc, nil
}

func (m *Memory[T, PT]) Delete(_ context.Context, key string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.lookup(m.opts.key(key))
	if !ok {
		return nil, m.opts.notFound()
	}
	doc := m.docs[id]
	delete(m.docs, id)
	return &doc, nil
}

// Len reports the number of stored documents.
func (m *Memory[T, PT]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *Memory[T, PT]) copyOf(doc *T) *T {
	if c, ok := any(doc).(Cloner[T]); ok {
		return c.Clone()
	}
	cp := *doc
	return &cp
}

// lookup must be called with mu held.
func (m *Memory[T, PT]) lookup(key string) (primitive.ObjectID, bool) {
	for id, doc := range m.docs {
		if PT(&doc).UniqueKey() == key {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}
