package models

import "time"

// User: the shop owner account. A single account is enough for the intended
// single-user deployment; registration is refused once one exists.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
