package models

import "time"

// Message defines a contact-form message based on the 'messages' table.
// Read flips to true the first time an admin opens the message.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   *string   `json:"subject,omitempty" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
