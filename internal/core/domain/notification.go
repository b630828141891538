package domain

import "time"

// Notification is an append-only message shown to a provider. The only
// permitted mutation is flipping Read to true.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID uint      `json:"recipient_id"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
