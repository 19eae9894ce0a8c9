package models

import (
	"time"

	"gorm.io/datatypes"
)

// Enquiry is a stored agent enquiry. Rows are written once at acceptance
// time and never updated or deleted.
type Enquiry struct {
	ID       string  `json:"reference_id" gorm:"primaryKey;size:16"`
	Operator string  `json:"operator" gorm:"not null"`
	AgentID  *string `json:"agent_id"`
	Model    *string `json:"model"`
	UseCase  string  `json:"use_case" gorm:"type:text;not null"`
	Scale    *string `json:"scale"`

	// JSON array of questions, NULL when the submission carried none.
	Questions datatypes.JSON `json:"questions" gorm:"type:jsonb"`

	ContactEmail   string  `json:"contact_email" gorm:"not null"`
	ContactWebhook *string `json:"contact_webhook"`

	CreatedAt time.Time `json:"created_at"`
}
