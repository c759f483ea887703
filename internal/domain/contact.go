package domain

import "time"

// Contact message delivery statuses.
const (
	ContactStatusPending   = "PENDING"
	ContactStatusDelivered = "DELIVERED"
)

// Contact log actions. The log is append-only: one CREATED entry per
// message, one STATUS_CHANGED entry per status transition.
const (
	ContactLogCreated       = "CREATED"
	ContactLogStatusChanged = "STATUS_CHANGED"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id,string" form:"id"`
	Name      string    `json:"name" form:"name"`
	Email     string    `gorm:"index" json:"email" form:"email"`
	Subject   string    `json:"subject" form:"subject"`
	Message   string    `gorm:"type:text" json:"message" form:"message"`
	IsRead    bool      `json:"isRead"`
	Status    string    `gorm:"size:16;default:PENDING" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (ContactMessage) TableName() string {
	return "contact_message"
}

// ContactLog is an append-only audit record of message lifecycle events.
// Details holds a JSON payload describing the event.
type ContactLog struct {
	ID        int64     `json:"id,string"`
	MessageID int64     `gorm:"index" json:"messageId,string"`
	Action    string    `gorm:"size:32" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (ContactLog) TableName() string {
	return "contact_log"
}
