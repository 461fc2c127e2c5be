package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDurationJSON(t *testing.T) {
	b, err := json.Marshal(Duration(15 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"15m0s"`, string(b))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m0s"`), &d))
	assert.Equal(t, 90, d.Minutes())

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestRecipeBSONKeepsCookingTimeAsNanoseconds(t *testing.T) {
	r := Recipe{Title: "pancakes", CookingTime: Duration(15 * time.Minute)}
	raw, err := bson.Marshal(r)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, int64(15*time.Minute), doc["cooking_time"])

	var back Recipe
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, r.CookingTime, back.CookingTime)
}

func TestUserPasswordHashNotSerialized(t *testing.T) {
	u := User{Name: "Ana", Email: "ana@example.com", PasswordHash: "secret-hash"}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
}

func TestFavoriteIndex(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	u := User{FavoriteRecipes: []RecipeRef{{ID: a, Title: "pancakes"}}}
	assert.Equal(t, 0, u.FavoriteIndex(a))
	assert.Equal(t, -1, u.FavoriteIndex(b))
}

func TestSnapshots(t *testing.T) {
	id := primitive.NewObjectID()
	c := Category{ID: id, Name: "breakfast", Description: "morning"}
	assert.Equal(t, CategoryInfo{ID: id, Name: "breakfast", Description: "morning"}, c.Info())

	r := Recipe{ID: id, Title: "pancakes"}
	assert.Equal(t, RecipeRef{ID: id, Title: "pancakes"}, r.Ref())
	assert.Equal(t, "pancakes", r.UniqueKey())
}
