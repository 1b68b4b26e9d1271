package models

import "time"

// Note is a single text note owned by exactly one account.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"createById"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
