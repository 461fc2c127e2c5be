package schemas

type IngredientRequest struct {
	Name string `json:"name" validate:"required,notblank,max=30"`
}

type KitchenToolRequest struct {
	Name string `json:"name" validate:"required,notblank,max=30"`
}

// CategoryRequest is used on create.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=30"`
	Description string `json:"description" validate:"max=100"`
}

// CategoryUpdateRequest changes the name, the description, or both.
type CategoryUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=30"`
	Description *string `json:"description" validate:"omitempty,max=100"`
}

// Empty reports whether no field was supplied.
func (c CategoryUpdateRequest) Empty() bool {
	return c.Name == nil && c.Description == nil
}

type IngredientUsageRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=30"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit" validate:"required,notblank,max=20"`
}

type KitchenToolRef struct {
	Name string `json:"name" validate:"required,notblank,max=30"`
}

type CategoryRef struct {
	Name string `json:"name" validate:"required,notblank,max=30"`
}

// RecipeRequest is the submission handed to the composer on both create
// and update. CookingTime is in minutes.
type RecipeRequest struct {
	Title        string                   `json:"title" validate:"required,notblank,max=70"`
	Ingredients  []IngredientUsageRequest `json:"ingredients" validate:"required,min=1,dive"`
	KitchenTools []KitchenToolRef         `json:"kitchen_tools" validate:"dive"`
	Portions     int                      `json:"portions" validate:"gt=0"`
	Instructions string                   `json:"instructions" validate:"required,notblank"`
	CookingTime  int                      `json:"cooking_time" validate:"gt=0"`
	Category     CategoryRef              `json:"category" validate:"required"`
}

type UserCreateRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=70"`
	LastName1 string `json:"lastname1" validate:"required,notblank,max=70"`
	LastName2 string `json:"lastname2" validate:"max=70"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UserUpdateRequest carries only the fields to change.
type UserUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,notblank,max=70"`
	LastName1 *string `json:"lastname1" validate:"omitempty,notblank,max=70"`
	LastName2 *string `json:"lastname2" validate:"omitempty,max=70"`
	Email     *string `json:"email" validate:"omitempty,email,max=150"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=72"`
}

func (u UserUpdateRequest) Empty() bool {
	return u.Name == nil && u.LastName1 == nil && u.LastName2 == nil && u.Email == nil && u.Password == nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
