package store

import (
	"mongochef/db"
	"mongochef/models"
	"mongochef/utils"
)

// Per-entity options. Names and titles are normalized; e-mails are only
// trimmed.
var (
	IngredientOptions  = Options{Entity: "Ingredient", Plural: "ingredients", KeyField: "name", Key: utils.Normalize}
	KitchenToolOptions = Options{Entity: "Kitchen tool", Plural: "kitchen tools", KeyField: "name", Key: utils.Normalize}
	CategoryOptions    = Options{Entity: "Category", Plural: "categories", KeyField: "name", Key: utils.Normalize}
	RecipeOptions      = Options{Entity: "Recipe", Plural: "recipes", KeyField: "title", Key: utils.Normalize}
	UserOptions        = Options{Entity: "User", Plural: "users", KeyField: "email", Key: utils.TrimKey}
)

// Repos bundles one repository per entity.
type Repos struct {
	Ingredients  Repository[models.Ingredient]
	KitchenTools Repository[models.KitchenTool]
	Categories   Repository[models.Category]
	Recipes      Repository[models.Recipe]
	Users        Repository[models.User]
}

// NewMongoRepos builds repositories over the given collections.
func NewMongoRepos(cols *db.Collections) *Repos {
	return &Repos{
		Ingredients:  NewMongo[models.Ingredient](cols.Ingredients, IngredientOptions),
		KitchenTools: NewMongo[models.KitchenTool](cols.KitchenTools, KitchenToolOptions),
		Categories:   NewMongo[models.Category](cols.Categories, CategoryOptions),
		Recipes:      NewMongo[models.Recipe](cols.Recipes, RecipeOptions),
		Users:        NewMongo[models.User](cols.Users, UserOptions),
	}
}

// NewMemoryRepos builds empty in-memory repositories.
func NewMemoryRepos() *Repos {
	return &Repos{
		Ingredients:  NewMemory[models.Ingredient](IngredientOptions),
		KitchenTools: NewMemory[models.KitchenTool](KitchenToolOptions),
		Categories:   NewMemory[models.Category](CategoryOptions),
		Recipes:      NewMemory[models.Recipe](RecipeOptions),
		Users:        NewMemory[models.User](UserOptions),
	}
}
