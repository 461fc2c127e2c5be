package models

import (
	"encoding/json"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IngredientInfo, KitchenToolInfo and CategoryInfo are snapshots taken when
// the recipe is saved. Renaming the referenced document does not touch them.
type IngredientInfo struct {
	ID   primitive.ObjectID `json:"id" bson:"id"`
	Name string             `json:"name" bson:"name"`
}

type KitchenToolInfo struct {
	ID   primitive.ObjectID `json:"id" bson:"id"`
	Name string             `json:"name" bson:"name"`
}

type CategoryInfo struct {
	ID          primitive.ObjectID `json:"id" bson:"id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
}

// IngredientUsage is an ingredient as used by one recipe.
type IngredientUsage struct {
	Ingredient IngredientInfo `json:"ingredient" bson:"ingredient"`
	Quantity   float64        `json:"quantity" bson:"quantity"`
	Unit       string         `json:"unit" bson:"unit"`
}

// Duration is stored as int64 nanoseconds and rendered as "15m0s" in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Minutes returns the duration in whole minutes.
func (d Duration) Minutes() int {
	return int(time.Duration(d) / time.Minute)
}

type Recipe struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Ingredients  []IngredientUsage  `json:"ingredients" bson:"ingredients"`
	KitchenTools []KitchenToolInfo  `json:"kitchen_tools" bson:"kitchen_tools"`
	Portions     int                `json:"portions" bson:"portions"`
	Instructions string             `json:"instructions" bson:"instructions"`
	CookingTime  Duration           `json:"cooking_time" bson:"cooking_time"`
	Category     CategoryInfo       `json:"category" bson:"category"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

func (r *Recipe) GetID() primitive.ObjectID   { return r.ID }
func (r *Recipe) SetID(id primitive.ObjectID) { r.ID = id }
func (r *Recipe) UniqueKey() string           { return r.Title }

// Clone returns a copy that shares no slices with r.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Ingredients = slices.Clone(r.Ingredients)
	cp.KitchenTools = slices.Clone(r.KitchenTools)
	return &cp
}

// Ref returns the snapshot stored in a user's favorites.
func (r *Recipe) Ref() RecipeRef {
	return RecipeRef{ID: r.ID, Title: r.Title}
}
