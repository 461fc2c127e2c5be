package routes

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"mongochef/auth"
	"mongochef/categories"
	"mongochef/composer"
	"mongochef/ingredients"
	"mongochef/kitchentools"
	"mongochef/middleware"
	"mongochef/mq"
	"mongochef/ratelim"
	"mongochef/recipes"
	"mongochef/store"
	"mongochef/users"
)

// Deps are the collaborators shared by every handler.
type Deps struct {
	Repos     *store.Repos
	Events    mq.Emitter
	Tokens    *auth.Tokens
	PublicURL string
	Timeout   time.Duration
	Metrics   http.Handler
}

// RoutesWrapper builds the handlers and registers every route.
func RoutesWrapper(router *httprouter.Router, deps Deps, rateLimiter *ratelim.RateLimiter) {
	events := deps.Events
	if events == nil {
		events = mq.Nop{}
	}
	repos := deps.Repos

	ingredientHandler := ingredients.NewHandler(repos.Ingredients, events)
	kitchenToolHandler := kitchentools.NewHandler(repos.KitchenTools, events)
	categoryHandler := categories.NewHandler(repos.Categories, events)
	comp := composer.New(repos.Ingredients, repos.KitchenTools, repos.Categories, repos.Recipes, events)
	recipeHandler := recipes.NewHandler(repos.Recipes, comp, events, deps.PublicURL)
	userHandler := users.NewHandler(repos.Users, repos.Recipes, deps.Tokens, events)

	if deps.Timeout > 0 {
		ingredientHandler.Timeout = deps.Timeout
		kitchenToolHandler.Timeout = deps.Timeout
		categoryHandler.Timeout = deps.Timeout
		recipeHandler.Timeout = deps.Timeout
		userHandler.Timeout = deps.Timeout
	}

	AddIngredientRoutes(router, ingredientHandler, rateLimiter)
	AddKitchenToolRoutes(router, kitchenToolHandler, rateLimiter)
	AddCategoryRoutes(router, categoryHandler, rateLimiter)
	AddRecipeRoutes(router, recipeHandler, rateLimiter)
	AddUserRoutes(router, userHandler, middleware.Authenticate(deps.Tokens), rateLimiter)
	AddUtilityRoutes(router, deps.Metrics)
}
