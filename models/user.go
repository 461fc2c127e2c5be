package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeRef is a favorite recipe snapshot.
type RecipeRef struct {
	ID    primitive.ObjectID `json:"id" bson:"id"`
	Title string             `json:"title" bson:"title"`
}

type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	LastName1       string             `json:"lastname1" bson:"lastname1"`
	LastName2       string             `json:"lastname2,omitempty" bson:"lastname2,omitempty"`
	Email           string             `json:"email" bson:"email"`
	PasswordHash    string             `json:"-" bson:"password_hash"`
	FavoriteRecipes []RecipeRef        `json:"favorite_recipes" bson:"favorite_recipes"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }
func (u *User) UniqueKey() string           { return u.Email }

func (u *User) Clone() *User {
	cp := *u
	cp.FavoriteRecipes = slices.Clone(u.FavoriteRecipes)
	return &cp
}

// FavoriteIndex returns the position of the recipe in the favorites, or -1.
func (u *User) FavoriteIndex(id primitive.ObjectID) int {
	for i, ref := range u.FavoriteRecipes {
		if ref.ID == id {
			return i
		}
	}
	return -1
}
