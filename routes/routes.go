package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mongochef/categories"
	"mongochef/ingredients"
	"mongochef/kitchentools"
	"mongochef/ratelim"
	"mongochef/recipes"
	"mongochef/users"
	"mongochef/utils"
)

func AddIngredientRoutes(router *httprouter.Router, h *ingredients.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/ingredients", h.List)
	router.GET("/ingredients/:name", h.Get)
	router.POST("/ingredients/create", rateLimiter.Limit(h.Create))
	router.PUT("/ingredients/update/:name", rateLimiter.Limit(h.Update))
	router.DELETE("/ingredients/delete/:name", rateLimiter.Limit(h.Delete))
}

func AddKitchenToolRoutes(router *httprouter.Router, h *kitchentools.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/kitchen_tools", h.List)
	router.GET("/kitchen_tools/:name", h.Get)
	router.POST("/kitchen_tools/create", rateLimiter.Limit(h.Create))
	router.PUT("/kitchen_tools/update/:name", rateLimiter.Limit(h.Update))
	router.DELETE("/kitchen_tools/delete/:name", rateLimiter.Limit(h.Delete))
}

func AddCategoryRoutes(router *httprouter.Router, h *categories.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/categories", h.List)
	router.GET("/categories/:name", h.Get)
	router.POST("/categories/create", rateLimiter.Limit(h.Create))
	router.PUT("/categories/update/:name", rateLimiter.Limit(h.Update))
	router.DELETE("/categories/delete/:name", rateLimiter.Limit(h.Delete))
}

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/recipes", h.List)
	router.GET("/recipes/:title", h.Get)
	router.GET("/recipes/:title/card", h.Card)
	router.GET("/recipes/:title/qr", h.QR)
	router.POST("/recipes/create", rateLimiter.Limit(h.Create))
	router.PUT("/recipes/update/:title", rateLimiter.Limit(h.Update))
	router.DELETE("/recipes/delete/:title", rateLimiter.Limit(h.Delete))
}

func AddUserRoutes(router *httprouter.Router, h *users.Handler, authenticate func(httprouter.Handle) httprouter.Handle, rateLimiter *ratelim.RateLimiter) {
	router.GET("/users", h.List)
	router.GET("/users/:email", h.Get)
	router.POST("/users/create", rateLimiter.Limit(h.Create))
	router.POST("/users/login", rateLimiter.Limit(h.Login))
	router.PUT("/users/update/:email", rateLimiter.Limit(authenticate(h.Update)))
	router.DELETE("/users/delete/:email", rateLimiter.Limit(authenticate(h.Delete)))

	router.PUT("/users/favorites/:title", rateLimiter.Limit(authenticate(h.AddFavorite)))
	router.DELETE("/users/favorites/:title", rateLimiter.Limit(authenticate(h.RemoveFavorite)))
}

// AddUtilityRoutes registers /health and /metrics.
func AddUtilityRoutes(router *httprouter.Router, metrics http.Handler) {
	router.GET("/health", Health)
	if metrics != nil {
		router.Handler(http.MethodGet, "/metrics", metrics)
	}
}

func Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ok"})
}
