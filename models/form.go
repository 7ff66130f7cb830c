package models

// FormSubmission is an accepted relayed form payload, kept for audit. The
// payload itself stays opaque JSON; only routing metadata gets columns.
type FormSubmission struct {
	BaseModel
	FormType string `gorm:"type:varchar(50);not null;index"`
	Source   string `gorm:"type:varchar(255)"`
	Endpoint string `gorm:"type:varchar(255);not null"`
	Fallback bool   `gorm:"not null;default:false"`
	Payload  string `gorm:"type:text;not null"` // JSON-encoded
}
