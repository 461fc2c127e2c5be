package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ingredient is created on first reference by a recipe and never deleted
// automatically.
type Ingredient struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

func (i *Ingredient) GetID() primitive.ObjectID   { return i.ID }
func (i *Ingredient) SetID(id primitive.ObjectID) { i.ID = id }
func (i *Ingredient) UniqueKey() string           { return i.Name }

// Info returns the snapshot embedded into recipes.
func (i *Ingredient) Info() IngredientInfo {
	return IngredientInfo{ID: i.ID, Name: i.Name}
}
