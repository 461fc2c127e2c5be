package models

import "time"

// Event describes a write that other services may react to.
type Event struct {
	EntityType string    `json:"entity_type"`
	Method     string    `json:"method"`
	Key        string    `json:"key"`
	EntityID   string    `json:"entity_id,omitempty"`
	At         time.Time `json:"at"`
}
