package recipes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mongochef/composer"
	"mongochef/crud"
	"mongochef/models"
	"mongochef/mq"
	"mongochef/recipecard"
	"mongochef/schemas"
	"mongochef/store"
	"mongochef/utils"
)

// Param is the route parameter holding the recipe title.
const Param = "title"

// Handler serves recipes. Writes go through the composer so referenced
// ingredients, tools and categories exist before the recipe is stored.
type Handler struct {
	*crud.Resource[models.Recipe, *models.Recipe]
	composer  *composer.Composer
	publicURL string
}

func NewHandler(repo store.Repository[models.Recipe], comp *composer.Composer, events mq.Emitter, publicURL string) *Handler {
	return &Handler{
		Resource:  crud.New[models.Recipe](repo, events, composer.EntityRecipe, Param),
		composer:  comp,
		publicURL: publicURL,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.RecipeRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()
	recipe, err := h.composer.Compose(ctx, req)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// Update replaces every field of the recipe under the route title.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req schemas.RecipeRequest
	if err := schemas.DecodeValid(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()
	recipe, err := h.composer.Recompose(ctx, h.Key(ps), req)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// Card serves the recipe as a printable PDF.
func (h *Handler) Card(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, ok := h.load(w, r, ps)
	if !ok {
		return
	}
	doc, err := recipecard.PDF(h.publicURL, recipe)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+recipecard.Filename(recipe.Title, "pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// QR serves a PNG QR code pointing at the recipe.
func (h *Handler) QR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, ok := h.load(w, r, ps)
	if !ok {
		return
	}
	png, err := recipecard.QR(h.publicURL, recipe)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*models.Recipe, bool) {
	ctx, cancel := h.Context(r)
	defer cancel()
	recipe, err := h.Repo.FindByKey(ctx, h.Key(ps))
	if err != nil {
		utils.RespondWithErr(w, err)
		return nil, false
	}
	return recipe, true
}
