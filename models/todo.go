package models

import (
	"time"
)

// Todo is the single persisted entity. IDs are auto-assigned and never
// reused; CreatedAt is set on insert and immutable afterwards.
type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// CreateTodoInput carries the creation request body. Title is validated by
// the handler and the service; absence is a client error, never defaulted.
type CreateTodoInput struct {
	Title string `json:"title"`
}

// UpdateTodoInput uses pointers so an omitted field keeps the stored value
// while an explicit zero value ("" or false) is still applied.
type UpdateTodoInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
