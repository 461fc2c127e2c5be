package kitchentools

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
	*crud.Resource[models.KitchenTool, *models.KitchenTool]
}

func NewHandler(repo store.Repository[models.KitchenTool], events mq.Emitter) *Handler {
	return &Handler{crud.New[models.KitchenTool](repo, events, "kitchen_tool", Param)}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.KitchenToolRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	h.Insert(w, r, &models.KitchenTool{Name: utils.Normalize(req.Name)})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req schemas.KitchenToolRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	name := utils.Normalize(req.Name)
	h.Replace(w, r, ps, func(tool *models.KitchenTool) error {
		if name == tool.Name {
			return errs.New(errs.CodeInvalidInput, "Kitchen tool name cannot be empty or the same as the existing one")
		}
		tool.Name = name
		return nil
	})
}
