package schemas

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongochef/errs"
)

func validRecipe() RecipeRequest {
	return RecipeRequest{
		Title:        "Pancakes",
		Ingredients:  []IngredientUsageRequest{{Name: "Flour", Quantity: 2, Unit: "Cups"}},
		KitchenTools: []KitchenToolRef{{Name: "Bowl"}},
		Portions:     2,
		Instructions: "Mix and cook",
		CookingTime:  15,
		Category:     CategoryRef{Name: "Breakfast"},
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/ingredients/create", strings.NewReader(""))
	var req IngredientRequest
	err := Decode(r, &req)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.CodeInvalidInput))
	assert.Equal(t, "No data provided", errs.MessageOf(err))
}

func TestDecodeMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/ingredients/create", strings.NewReader("{name:"))
	var req IngredientRequest
	err := Decode(r, &req)
	assert.True(t, errs.Is(err, errs.CodeInvalidInput))
	assert.Equal(t, "Invalid JSON payload", errs.MessageOf(err))
}

func TestDecodeValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/ingredients/create", strings.NewReader(`{"name":"Salt"}`))
	var req IngredientRequest
	require.NoError(t, DecodeValid(r, &req))
	assert.Equal(t, "Salt", req.Name)
}

func TestValidateRecipe(t *testing.T) {
	require.NoError(t, Validate(validRecipe()))

	tests := []struct {
		name    string
		mutate  func(*RecipeRequest)
		field   string
		message string
	}{
		{"missing title", func(r *RecipeRequest) { r.Title = "" }, "title", "title is required"},
		{"blank title", func(r *RecipeRequest) { r.Title = "   " }, "title", "title is required"},
		{"long title", func(r *RecipeRequest) { r.Title = strings.Repeat("a", 71) }, "title", "title must be at most 70 characters"},
		{"zero portions", func(r *RecipeRequest) { r.Portions = 0 }, "portions", "portions must be greater than 0"},
		{"negative quantity", func(r *RecipeRequest) { r.Ingredients[0].Quantity = -1 }, "ingredients[0].quantity", "ingredients[0].quantity must be greater than 0"},
		{"long unit", func(r *RecipeRequest) { r.Ingredients[0].Unit = strings.Repeat("g", 21) }, "ingredients[0].unit", "ingredients[0].unit must be at most 20 characters"},
		{"no ingredients", func(r *RecipeRequest) { r.Ingredients = nil }, "ingredients", "ingredients is required"},
		{"blank tool", func(r *RecipeRequest) { r.KitchenTools[0].Name = " " }, "kitchen_tools[0].name", "kitchen_tools[0].name is required"},
		{"no category", func(r *RecipeRequest) { r.Category = CategoryRef{} }, "category", "category is required"},
		{"zero cooking time", func(r *RecipeRequest) { r.CookingTime = 0 }, "cooking_time", "cooking_time must be greater than 0"},
		{"empty instructions", func(r *RecipeRequest) { r.Instructions = "" }, "instructions", "instructions is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRecipe()
			tt.mutate(&req)
			err := Validate(req)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.CodeInvalidInput))
			assert.Equal(t, tt.message, errs.MessageOf(err))

			var e *errs.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.field, e.Context["field"])
		})
	}
}

func TestValidateNameLengthsCountRunes(t *testing.T) {
	assert.NoError(t, Validate(IngredientRequest{Name: strings.Repeat("é", 30)}))
	assert.Error(t, Validate(IngredientRequest{Name: strings.Repeat("é", 31)}))
	assert.Error(t, Validate(CategoryRequest{Name: "breakfast", Description: strings.Repeat("x", 101)}))
}

func TestValidateUsers(t *testing.T) {
	create := UserCreateRequest{Name: "Ana", LastName1: "García", Email: "ana@example.com", Password: "s3cretpass"}
	require.NoError(t, Validate(create))

	create.Email = "not-an-email"
	err := Validate(create)
	assert.Equal(t, "email must be a valid e-mail address", errs.MessageOf(err))

	create.Email = "ana@example.com"
	create.Password = "short"
	err = Validate(create)
	assert.Equal(t, "password must be at least 8 characters", errs.MessageOf(err))

	short := "short"
	assert.Error(t, Validate(UserUpdateRequest{Password: &short}))
	assert.NoError(t, Validate(UserUpdateRequest{}))
	assert.True(t, UserUpdateRequest{}.Empty())

	blank := "  "
	assert.Error(t, Validate(UserUpdateRequest{Name: &blank}))
}

func TestCategoryUpdateEmpty(t *testing.T) {
	assert.True(t, CategoryUpdateRequest{}.Empty())
	desc := ""
	assert.False(t, CategoryUpdateRequest{Description: &desc}.Empty())
	assert.NoError(t, Validate(CategoryUpdateRequest{Description: &desc}))
}
