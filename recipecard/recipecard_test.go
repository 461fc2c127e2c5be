package recipecard

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongochef/models"
)

func pancakes() *models.Recipe {
	return &models.Recipe{
		Title: "pancakes",
		Ingredients: []models.IngredientUsage{
			{Ingredient: models.IngredientInfo{Name: "flour"}, Quantity: 2, Unit: "cups"},
			{Ingredient: models.IngredientInfo{Name: "crème fraîche"}, Quantity: 0.5, Unit: "cup"},
		},
		KitchenTools: []models.KitchenToolInfo{{Name: "bowl"}, {Name: "pan"}},
		Portions:     2,
		Instructions: "Mix and cook",
		CookingTime:  models.Duration(15 * time.Minute),
		Category:     models.CategoryInfo{Name: "breakfast"},
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/recipes/pancakes", Link("http://localhost:8080/", "pancakes"))
	assert.Equal(t, "https://chef.example/recipes/fluffy%20pancakes", Link("https://chef.example", "fluffy pancakes"))
}

func TestQR(t *testing.T) {
	png, err := QR("http://localhost:8080", pancakes())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestPDF(t *testing.T) {
	doc, err := PDF("http://localhost:8080", pancakes())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Greater(t, len(doc), 1000)
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", formatQuantity(2))
	assert.Equal(t, "0.5", formatQuantity(0.5))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "fluffy-pancakes.pdf", Filename("fluffy pancakes", "pdf"))
	assert.Equal(t, "ab.png", Filename(`a/b"`, "png"))
}
