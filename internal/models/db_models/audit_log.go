package db_models

// AuditLog is an append-only compliance record. Either UserID or SessionID
// may be set; anonymous quiz actions carry only the session token.
type AuditLog struct {
	BaseModel
	UserID    string `gorm:"index;size:64"`
	SessionID string `gorm:"index;size:128"`
	Action    string `gorm:"index"` // CREATE, READ, UPDATE, DELETE, LOGIN, LOGOUT, QUIZ_SUBMIT, QUIZ_VIEW, ANONYMOUS_ACTION
	Resource  string // USER_PROFILE, QUIZ_DATA, ANONYMOUS_QUIZ, AUTH, PRODUCTS, SERVICES, PODCASTS
	IPAddress string
	UserAgent string
	Country   string
	Details   string `gorm:"type:text"`
}
