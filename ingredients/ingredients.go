package ingredients

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

// Param is the route parameter holding the ingredient name.
const Param = "name"

type Handler struct {
	*crud.Resource[models.Ingredient, *models.Ingredient]
}

func NewHandler(repo store.Repository[models.Ingredient], events mq.Emitter) *Handler {
	return &Handler{crud.New[models.Ingredient](repo, events, "ingredient", Param)}
}

// Create stores a new ingredient under its normalized name.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.IngredientRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	h.Insert(w, r, &models.Ingredient{Name: utils.Normalize(req.Name)})
}

// Update renames an ingredient. Recipes keep the name they embedded.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req schemas.IngredientRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	name := utils.Normalize(req.Name)
	h.Replace(w, r, ps, func(ing *models.Ingredient) error {
		if name == ing.Name {
			return errs.New(errs.CodeInvalidInput, "Ingredient name cannot be empty or the same as the existing one")
		}
		ing.Name = name
		return nil
	})
}
