package users

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongochef/auth"
	"mongochef/crud"
	"mongochef/errs"
	"mongochef/models"
	"mongochef/mq"
	"mongochef/schemas"
	"mongochef/store"
	"mongochef/utils"
)

// Param is the route parameter holding the user e-mail.
const Param = "email"

// RecipeParam names the recipe in the favorites routes.
const RecipeParam = "title"

type Handler struct {
	*crud.Resource[models.User, *models.User]
	recipes store.Repository[models.Recipe]
	tokens  *auth.Tokens
	now     func() time.Time
}

func NewHandler(repo store.Repository[models.User], recipes store.Repository[models.Recipe], tokens *auth.Tokens, events mq.Emitter) *Handler {
	return &Handler{
		Resource: crud.New[models.User](repo, events, "user", Param),
		recipes:  recipes,
		tokens:   tokens,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.UserCreateRequest
	if err := schemas.Decode(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	req.Email = utils.TrimKey(req.Email)
	if err := schemas.Validate(req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	now := h.now()
	h.Insert(w, r, &models.User{
		Name:            strings.TrimSpace(req.Name),
		LastName1:       strings.TrimSpace(req.LastName1),
		LastName2:       strings.TrimSpace(req.LastName2),
		Email:           req.Email,
		PasswordHash:    hash,
		FavoriteRecipes: []models.RecipeRef{},
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

// Update applies the supplied fields to the caller's own account. A request
// that changes nothing is rejected.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req schemas.UserUpdateRequest
	if err := schemas.Decode(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if req.Email != nil {
		email := utils.TrimKey(*req.Email)
		req.Email = &email
	}
	if err := schemas.Validate(req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if req.Empty() {
		utils.RespondWithErr(w, errs.New(errs.CodeInvalidInput, "No data to update"))
		return
	}

	h.Replace(w, r, ps, func(u *models.User) error {
		if err := owner(r, u); err != nil {
			return err
		}
		changed := false
		set := func(dst *string, src *string) {
			if src == nil {
				return
			}
			if v := strings.TrimSpace(*src); v != *dst {
				*dst = v
				changed = true
			}
		}
		set(&u.Name, req.Name)
		set(&u.LastName1, req.LastName1)
		set(&u.LastName2, req.LastName2)
		set(&u.Email, req.Email)

		if req.Password != nil && !auth.CheckPassword(u.PasswordHash, *req.Password) {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			changed = true
		}
		if !changed {
			return errs.New(errs.CodeInvalidInput, "User is unchanged")
		}
		u.UpdatedAt = h.now()
		return nil
	})
}

// Delete removes the caller's own account.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.Context(r)
	defer cancel()

	user, err := h.Repo.FindByKey(ctx, h.Key(ps))
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if err := owner(r, user); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	h.Resource.Delete(w, r, ps)
}

// Login checks the credentials and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req schemas.LoginRequest
	if err := schemas.Decode(r, &req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	req.Email = utils.TrimKey(req.Email)
	if err := schemas.Validate(req); err != nil {
		utils.RespondWithErr(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	invalid := errs.New(errs.CodeUnauthorized, "Invalid email or password")
	user, err := h.Repo.FindByKey(ctx, req.Email)
	if errs.Is(err, errs.CodeNotFound) {
		utils.RespondWithErr(w, invalid)
		return
	}
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		utils.RespondWithErr(w, invalid)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token, "email": user.Email})
}

// AddFavorite stores a snapshot of the recipe in the caller's favorites.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.Context(r)
	defer cancel()

	user, err := h.caller(ctx, r)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	recipe, err := h.recipes.FindByKey(ctx, ps.ByName(RecipeParam))
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	if user.FavoriteIndex(recipe.ID) >= 0 {
		utils.RespondWithErr(w, errs.New(errs.CodeConflict, "Recipe already in favorites"))
		return
	}

	user.FavoriteRecipes = append(user.FavoriteRecipes, recipe.Ref())
	user.UpdatedAt = h.now()
	h.save(w, r, user)
}

// RemoveFavorite drops a recipe from the caller's favorites. The recipe
// itself may already be deleted; the stored snapshot is matched by title.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.Context(r)
	defer cancel()

	user, err := h.caller(ctx, r)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	title := utils.Normalize(ps.ByName(RecipeParam))
	idx := -1
	for i, ref := range user.FavoriteRecipes {
		if ref.Title == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		utils.RespondWithErr(w, errs.New(errs.CodeNotFound, "Recipe not in favorites"))
		return
	}

	user.FavoriteRecipes = append(user.FavoriteRecipes[:idx], user.FavoriteRecipes[idx+1:]...)
	user.UpdatedAt = h.now()
	h.save(w, r, user)
}

// caller loads the authenticated user by the id in the token, so a token
// stays valid after an e-mail change.
func (h *Handler) caller(ctx context.Context, r *http.Request) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(utils.GetUserIDFromRequest(r))
	if err != nil {
		return nil, errs.Wrap(errs.CodeUnauthorized, "Invalid token", err)
	}
	return h.Repo.FindByID(ctx, id)
}

func owner(r *http.Request, u *models.User) error {
	if u.ID.Hex() != utils.GetUserIDFromRequest(r) {
		return errs.New(errs.CodeUnauthorized, "Not allowed to modify another user")
	}
	return nil
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, user *models.User) {
	ctx, cancel := h.Context(r)
	defer cancel()

	saved, err := h.Repo.Save(ctx, user)
	if err != nil {
		utils.RespondWithErr(w, err)
		return
	}
	h.Emit(ctx, mq.MethodUpdate, saved)
	utils.RespondWithJSON(w, http.StatusOK, saved)
}
