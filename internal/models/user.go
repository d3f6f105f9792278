package models

// User represents a registered account.
type User struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string `json:"-" gorm:"type:varchar(255)" validate:"required"` // bcrypt hash, never the plaintext
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
