package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type KitchenTool struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

func (k *KitchenTool) GetID() primitive.ObjectID   { return k.ID }
func (k *KitchenTool) SetID(id primitive.ObjectID) { k.ID = id }
func (k *KitchenTool) UniqueKey() string           { return k.Name }

func (k *KitchenTool) Info() KitchenToolInfo {
	return KitchenToolInfo{ID: k.ID, Name: k.Name}
}
