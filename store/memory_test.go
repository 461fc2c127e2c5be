package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mongochef/errs"
	"mongochef/models"
	"mongochef/utils"
)

var (
	_ Repository[models.Ingredient] = (*Memory[models.Ingredient, *models.Ingredient])(nil)
	_ Repository[models.Recipe]     = (*Mongo[models.Recipe, *models.Recipe])(nil)
)

func newIngredients() *Memory[models.Ingredient, *models.Ingredient] {
	return NewMemory[models.Ingredient](IngredientOptions)
}

func TestMemoryInsertAssignsID(t *testing.T) {
	repo := newIngredients()
	got, err := repo.Insert(context.Background(), &models.Ingredient{Name: "salt"})
	require.NoError(t, err)
	assert.False(t, got.ID.IsZero())
	assert.Equal(t, 1, repo.Len())
}

func TestMemoryInsertDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	_, err := repo.Insert(ctx, &models.Ingredient{Name: utils.Normalize("Salt")})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, &models.Ingredient{Name: utils.Normalize(" salt ")})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeConflict))
	assert.Equal(t, "Ingredient already exists", errs.MessageOf(err))
}

func TestMemoryFindByKeyNormalizesLookup(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	_, err := repo.Insert(ctx, &models.Ingredient{Name: "tomato"})
	require.NoError(t, err)

	got, err := repo.FindByKey(ctx, " Tomato ")
	require.NoError(t, err)
	assert.Equal(t, "tomato", got.Name)

	_, err = repo.FindByKey(ctx, "basil")
	assert.True(t, errs.Is(err, errs.CodeNotFound))
	assert.Equal(t, "Ingredient not found", errs.MessageOf(err))
}

func TestMemoryListAll(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()

	_, err := repo.ListAll(ctx)
	assert.True(t, errs.Is(err, errs.CodeNotFound))
	assert.Equal(t, "No ingredients found", errs.MessageOf(err))

	for _, n := range []string{"sugar", "flour", "eggs"} {
		_, err := repo.Insert(ctx, &models.Ingredient{Name: n})
		require.NoError(t, err)
	}
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"eggs", "flour", "sugar"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestMemorySave(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	salt, err := repo.Insert(ctx, &models.Ingredient{Name: "salt"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &models.Ingredient{Name: "pepper"})
	require.NoError(t, err)

	salt.Name = "sea salt"
	_, err = repo.Save(ctx, salt)
	require.NoError(t, err)
	got, err := repo.FindByKey(ctx, "sea salt")
	require.NoError(t, err)
	assert.Equal(t, salt.ID, got.ID)

	// same key as itself is fine
	_, err = repo.Save(ctx, got)
	require.NoError(t, err)

	got.Name = "pepper"
	_, err = repo.Save(ctx, got)
	assert.True(t, errs.Is(err, errs.CodeConflict))

	_, err = repo.Save(ctx, &models.Ingredient{ID: primitive.NewObjectID(), Name: "ghost"})
	assert.True(t, errs.Is(err, errs.CodeNotFound))
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	_, err := repo.Insert(ctx, &models.Ingredient{Name: "salt"})
	require.NoError(t, err)

	got, err := repo.FindByKey(ctx, "salt")
	require.NoError(t, err)
	got.Name = "changed"

	again, err := repo.FindByKey(ctx, "salt")
	require.NoError(t, err)
	assert.Equal(t, "salt", again.Name)
}

func TestMemoryCopiesSliceFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory[models.Recipe](RecipeOptions)
	in := &models.Recipe{
		Title:        "pancakes",
		Ingredients:  []models.IngredientUsage{{Ingredient: models.IngredientInfo{Name: "flour"}, Quantity: 2, Unit: "cups"}},
		KitchenTools: []models.KitchenToolInfo{{Name: "bowl"}},
	}
	_, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	in.Ingredients[0].Quantity = 7

	got, err := repo.FindByKey(ctx, "pancakes")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Ingredients[0].Quantity)
	got.Ingredients[0].Quantity = 99
	got.KitchenTools[0].Name = "pan"

	again, err := repo.FindByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, again.Ingredients[0].Quantity)
	assert.Equal(t, "bowl", again.KitchenTools[0].Name)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	all[0].Ingredients[0].Quantity = 42
	again, err = repo.FindByKey(ctx, "pancakes")
	require.NoError(t, err)
	assert.Equal(t, 2.0, again.Ingredients[0].Quantity)
}

func TestMemoryFavoritesNotShared(t *testing.T) {
	ctx := context.Background()
	users := NewMemory[models.User](UserOptions)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	_, err := users.Insert(ctx, &models.User{Email: "ana@example.com", FavoriteRecipes: []models.RecipeRef{{ID: a, Title: "pancakes"}, {ID: b, Title: "waffles"}}})
	require.NoError(t, err)

	got, err := users.FindByKey(ctx, "ana@example.com")
	require.NoError(t, err)
	// removing in place must not reach the stored favorites before Save
	got.FavoriteRecipes = append(got.FavoriteRecipes[:0], got.FavoriteRecipes[1:]...)

	again, err := users.FindByKey(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, again.FavoriteRecipes, 2)
	assert.Equal(t, "pancakes", again.FavoriteRecipes[0].Title)
}

func TestMemoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	salt, err := repo.Insert(ctx, &models.Ingredient{Name: "salt"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, salt.ID)
	require.NoError(t, err)
	assert.Equal(t, "salt", got.Name)

	_, err = repo.FindByID(ctx, primitive.NewObjectID())
	assert.True(t, errs.Is(err, errs.CodeNotFound))
	assert.Equal(t, "Ingredient not found", errs.MessageOf(err))
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()
	_, err := repo.Insert(ctx, &models.Ingredient{Name: "salt"})
	require.NoError(t, err)

	prior, err := repo.Delete(ctx, "SALT")
	require.NoError(t, err)
	assert.Equal(t, "salt", prior.Name)
	assert.Equal(t, 0, repo.Len())

	_, err = repo.Delete(ctx, "salt")
	assert.True(t, errs.Is(err, errs.CodeNotFound))
}

func TestMemoryVerbatimKeys(t *testing.T) {
	ctx := context.Background()
	users := NewMemory[models.User](UserOptions)
	_, err := users.Insert(ctx, &models.User{Email: "Ana@example.com"})
	require.NoError(t, err)

	_, err = users.FindByKey(ctx, " Ana@example.com ")
	require.NoError(t, err)
	_, err = users.FindByKey(ctx, "ana@example.com")
	assert.True(t, errs.Is(err, errs.CodeNotFound))
}

func TestMemoryConcurrentInsertOneWinner(t *testing.T) {
	ctx := context.Background()
	repo := newIngredients()

	var wg sync.WaitGroup
	results := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, &models.Ingredient{Name: "flour"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, errs.CodeConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 15, conflicts)
}
