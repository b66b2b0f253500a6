package Models

import (
	"time"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Task is a to-do item tied to an entity and a contact person.
type Task struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	DateCreated   time.Time `json:"date_created"`
	EntityName    string    `json:"entity_name" gorm:"size:100;not null"`
	TaskType      string    `json:"task_type" gorm:"size:50;not null"`
	TaskTime      time.Time `json:"task_time" gorm:"not null"`
	ContactPerson string    `json:"contact_person" gorm:"size:100;not null"`
	Note          string    `json:"note" gorm:"type:text"`
	Status        string    `json:"status" gorm:"size:20;default:open"`
}

// ValidStatus reports whether s is one of the two accepted status values.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusClosed
}

// SortColumns maps accepted sort_by values to their database columns.
// Anything not listed here falls back to date_created.
var SortColumns = map[string]string{
	"id":             "id",
	"date_created":   "date_created",
	"entity_name":    "entity_name",
	"task_type":      "task_type",
	"task_time":      "task_time",
	"contact_person": "contact_person",
	"note":           "note",
	"status":         "status",
}
