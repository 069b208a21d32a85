package models

import "time"

// Owner is a registered account. Every record and cursor belongs to
// exactly one owner.
type Owner struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}
