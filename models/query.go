package models

import "time"

// Query statuses.
const (
	QueryStatusNew     = "new"
	QueryStatusReplied = "replied"
	QueryStatusClosed  = "closed"
)

// Query is a contact-form message from a visitor.
type Query struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone,omitempty"`
	Subject    string    `bson:"subject" json:"subject"`
	Message    string    `bson:"message" json:"message"`
	Status     string    `bson:"status" json:"status"`
	AdminNotes string    `bson:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// QueryCreateInput is the public payload for POST /api/queries.
type QueryCreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidQueryStatus reports whether s is one of the known query statuses.
func ValidQueryStatus(s string) bool {
	switch s {
	case QueryStatusNew, QueryStatusReplied, QueryStatusClosed:
		return true
	}
	return false
}
