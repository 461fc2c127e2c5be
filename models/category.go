package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
}

func (c *Category) GetID() primitive.ObjectID   { return c.ID }
func (c *Category) SetID(id primitive.ObjectID) { c.ID = id }
func (c *Category) UniqueKey() string           { return c.Name }

func (c *Category) Info() CategoryInfo {
	return CategoryInfo{ID: c.ID, Name: c.Name, Description: c.Description}
}
