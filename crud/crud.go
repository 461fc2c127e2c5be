// Package crud provides the list, get and delete handlers shared by every
// entity, plus the helpers entity packages use for their own writes.
package crud

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"mongochef/mq"
	"mongochef/store"
	"mongochef/utils"
)

// DefaultTimeout bounds the store calls of one request.
const DefaultTimeout = 5 * time.Second

// Resource serves one entity collection.
type Resource[T any, PT store.DocPtr[T]] struct {
	Repo    store.Repository[T]
	Events  mq.Emitter
	Entity  string // event entity name, e.g. "kitchen_tool"
	Param   string // route parameter holding the key
	Timeout time.Duration
}

func New[T any, PT store.DocPtr[T]](repo store.Repository[T], events mq.Emitter, entity, param string) *Resource[T, PT] {
	if events == nil {
		events = mq.Nop{}
	}
	return &Resource[T, PT]{Repo: repo, Events: events, Entity: entity, Param: param, Timeout: DefaultTimeout}
}

// Context derives the per-request store context.
func (res *Resource[T, PT]) Context(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := res.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

// Key returns the route key.
func (res *Resource[T, PT]) Key(ps httprouter.Params) string {
	return ps.ByName(res.Param)
}

// Emit publishes an event for doc.
func (res *Resource[T, PT]) Emit(ctx context.Context, method string, doc *T) {
	p := PT(doc)
	res.Events.Emit(ctx, mq.NewEvent(res.Entity, method, p.UniqueKey(), p.GetID()))
}

// List responds with every document, or 404 when there are none.
func (res *Resource[T, PT]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := res.Context(r)
	defer cancel()

	docs, err := res.Repo.ListAll(ctx)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, docs)
}

// Get responds with the document under the route key.
func (res *Resource[T, PT]) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := res.Context(r)
	defer cancel()

	doc, err := res.Repo.FindByKey(ctx, res.Key(ps))
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, doc)
}

// Delete removes the document under the route key and responds with its
// prior value.
func (res *Resource[T, PT]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := res.Context(r)
	defer cancel()

	doc, err := res.Repo.Delete(ctx, res.Key(ps))
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	res.Emit(ctx, mq.MethodDelete, doc)
	utils.RespondWithJSON(w, http.StatusOK, doc)
}

// Insert stores a new doc and responds with it.
func (res *Resource[T, PT]) Insert(w http.ResponseWriter, r *http.Request, doc *T) {
	ctx, cancel := res.Context(r)
	defer cancel()

	saved, err := res.Repo.Insert(ctx, doc)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	res.Emit(ctx, mq.MethodCreate, saved)
	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// Replace loads the document under the route key, lets apply mutate it and
// saves the result. apply returns an error to reject the change.
func (res *Resource[T, PT]) Replace(w http.ResponseWriter, r *http.Request, ps httprouter.Params, apply func(*T) error) {
	ctx, cancel := res.Context(r)
	defer cancel()

	doc, err := res.Repo.FindByKey(ctx, res.Key(ps))
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if err := apply(doc); err != nil {
		utils.RespondWithErr(w, err)
		return
	}

	saved, err := res.Repo.Save(ctx, doc)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	res.Emit(ctx, mq.MethodUpdate, saved)
	utils.RespondWithJSON(w, http.StatusOK, saved)
}
