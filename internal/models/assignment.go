package models

import "time"

// Assignment represents a unit of work tracked by the API.
type Assignment struct {
	ID           int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" gorm:"not null" validate:"required"`
	Description  string     `json:"description"`
	CreationDate time.Time  `json:"creation_date"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status"`
}
