// Package composer turns a recipe submission into a stored Recipe,
// resolving or creating the ingredients, kitchen tools and category it
// references.
//
// There is no transaction across the dependent writes and the recipe write.
// Entities created before a failing recipe write stay behind as valid,
// shareable records.
package composer

import (
	"context"
	"time"

	"mongochef/errs"
	"mongochef/models"
	"mongochef/mq"
	"mongochef/schemas"
	"mongochef/store"
	"mongochef/utils"
)

// Entity names used in events.
const (
	EntityIngredient  = "ingredient"
	EntityKitchenTool = "kitchen_tool"
	EntityCategory    = "category"
	EntityRecipe      = "recipe"
)

type Composer struct {
	ingredients  store.Repository[models.Ingredient]
	kitchenTools store.Repository[models.KitchenTool]
	categories   store.Repository[models.Category]
	recipes      store.Repository[models.Recipe]
	events       mq.Emitter
	now          func() time.Time
}

func New(
	ingredients store.Repository[models.Ingredient],
	kitchenTools store.Repository[models.KitchenTool],
	categories store.Repository[models.Category],
	recipes store.Repository[models.Recipe],
	events mq.Emitter,
) *Composer {
	if events == nil {
		events = mq.Nop{}
	}
	return &Composer{
		ingredients:  ingredients,
		kitchenTools: kitchenTools,
		categories:   categories,
		recipes:      recipes,
		events:       events,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Compose resolves the submission's references and inserts a new recipe.
// It fails with errs.CodeConflict when the normalized title is taken.
func (c *Composer) Compose(ctx context.Context, req schemas.RecipeRequest) (*models.Recipe, error) {
	recipe, err := c.assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	now := c.now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	saved, err := c.recipes.Insert(ctx, recipe)
	if err != nil {
		return nil, err
	}
	c.events.Emit(ctx, mq.NewEvent(EntityRecipe, mq.MethodCreate, saved.Title, saved.ID))
	return saved, nil
}

// Recompose overwrites every field of the recipe stored under title.
// Keeping the current title is allowed; taking another recipe's title
// fails with errs.CodeConflict.
func (c *Composer) Recompose(ctx context.Context, title string, req schemas.RecipeRequest) (*models.Recipe, error) {
	existing, err := c.recipes.FindByKey(ctx, title)
	if err != nil {
		return nil, err
	}

	recipe, err := c.assemble(ctx, req)
	if err != nil {
		return nil, err
	}
	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt
	recipe.UpdatedAt = c.now()

	saved, err := c.recipes.Save(ctx, recipe)
	if err != nil {
		return nil, err
	}
	c.events.Emit(ctx, mq.NewEvent(EntityRecipe, mq.MethodUpdate, saved.Title, saved.ID))
	return saved, nil
}

func (c *Composer) assemble(ctx context.Context, req schemas.RecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:        utils.Normalize(req.Title),
		Ingredients:  make([]models.IngredientUsage, 0, len(req.Ingredients)),
		KitchenTools: make([]models.KitchenToolInfo, 0, len(req.KitchenTools)),
		Portions:     req.Portions,
		Instructions: req.Instructions,
		CookingTime:  models.Duration(time.Duration(req.CookingTime) * time.Minute),
	}

	for _, usage := range req.Ingredients {
		ingredient, err := c.ingredient(ctx, usage.Name)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = append(recipe.Ingredients, models.IngredientUsage{
			Ingredient: ingredient.Info(),
			Quantity:   usage.Quantity,
			Unit:       utils.Normalize(usage.Unit),
		})
	}

	for _, ref := range req.KitchenTools {
		tool, err := c.kitchenTool(ctx, ref.Name)
		if err != nil {
			return nil, err
		}
		recipe.KitchenTools = append(recipe.KitchenTools, tool.Info())
	}

	category, err := c.category(ctx, req.Category.Name)
	if err != nil {
		return nil, err
	}
	recipe.Category = category.Info()
	return recipe, nil
}

func (c *Composer) ingredient(ctx context.Context, name string) (*models.Ingredient, error) {
	name = utils.Normalize(name)
	doc, created, err := lookupOrCreate(ctx, c.ingredients, name, func() *models.Ingredient {
		return &models.Ingredient{Name: name}
	})
	if created {
		c.events.Emit(ctx, mq.NewEvent(EntityIngredient, mq.MethodCreate, doc.Name, doc.ID))
	}
	return doc, err
}

func (c *Composer) kitchenTool(ctx context.Context, name string) (*models.KitchenTool, error) {
	name = utils.Normalize(name)
	doc, created, err := lookupOrCreate(ctx, c.kitchenTools, name, func() *models.KitchenTool {
		return &models.KitchenTool{Name: name}
	})
	if created {
		c.events.Emit(ctx, mq.NewEvent(EntityKitchenTool, mq.MethodCreate, doc.Name, doc.ID))
	}
	return doc, err
}

// category keeps the description of an existing category; a new one starts
// with an empty description.
func (c *Composer) category(ctx context.Context, name string) (*models.Category, error) {
	name = utils.Normalize(name)
	doc, created, err := lookupOrCreate(ctx, c.categories, name, func() *models.Category {
		return &models.Category{Name: name, Description: ""}
	})
	if created {
		c.events.Emit(ctx, mq.NewEvent(EntityCategory, mq.MethodCreate, doc.Name, doc.ID))
	}
	return doc, err
}

// lookupOrCreate finds key or inserts build(). When the insert loses a race
// against a concurrent writer the store reports a conflict, and the lookup
// is retried once to pick up the winner's document.
func lookupOrCreate[T any](ctx context.Context, repo store.Repository[T], key string, build func() *T) (*T, bool, error) {
	for attempt := 0; ; attempt++ {
		doc, err := repo.FindByKey(ctx, key)
		if err == nil {
			return doc, false, nil
		}
		if !errs.Is(err, errs.CodeNotFound) {
			return nil, false, err
		}

		doc, err = repo.Insert(ctx, build())
		if err == nil {
			return doc, true, nil
		}
		if attempt == 0 && errs.Is(err, errs.CodeConflict) {
			continue
		}
		return nil, false, err
	}
}
