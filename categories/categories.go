package categories

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mongochef/crud"
	"mongochef/errs"
	"mongochef/models"
	"mongochef/mq"
	"mongochef/schemas"
	"mongochef/store"
	"mongochef/utils"
)

const Param = "name"

type Handler struct {
	*crud.Resource[models.Category, *models.Category]
}

func NewHandler(repo store.Repository[models.Category], events mq.Emitter) *Handler {
	return &Handler{crud.New[models.Category](repo, events, "category", Param)}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.CategoryRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	h.Insert(w, r, &models.Category{
		Name:        utils.Normalize(req.Name),
		Description: req.Description,
	})
}

// Update changes the name, the description or both. At least one of them
// has to differ from the stored value.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req schemas.CategoryUpdateRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if req.Empty() {
		utils.RespondWithErr(w, errs.New(errs.CodeInvalidInput, "No data provided for update"))
		return
	}

	h.Replace(w, r, ps, func(cat *models.Category) error {
		changed := false
		if req.Name != nil {
			if name := utils.Normalize(*req.Name); name != cat.Name {
				cat.Name = name
				changed = true
			}
		}
		if req.Description != nil && *req.Description != cat.Description {
			cat.Description = *req.Description
			changed = true
		}
		if !changed {
			return errs.New(errs.CodeInvalidInput, "Category is unchanged")
		}
		return nil
	})
}
