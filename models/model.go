package models

import "time"

// Model carries the store-owned identity and lifecycle timestamps shared by
// every resource. There is deliberately no DeletedAt column: DELETE on this
// API is a hard delete, not a tombstone.
type Model struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the embedded Model so generic code can reach the primary key
// and timestamps without reflection.
func (m *Model) Meta() *Model { return m }

// Entity constrains a pointer to any resource struct embedding Model.
type Entity[T any] interface {
	*T
	Meta() *Model
}
