package models

import "time"

// RoleMember is the only role the demo scheme knows.
const RoleMember = "member"

// Session is the persisted demo login state of one browser profile.
type Session struct {
	LoggedIn       bool      `json:"loggedIn"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	LoginTimestamp time.Time `json:"loginTimestamp"`
}

// NavigationState is what the navigation view needs to render itself.
type NavigationState struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
	Display  string `json:"display"`
}

// DemoCredential is one entry of the seeded demo login table. Passwords are
// stored bcrypt-hashed even though the whole scheme is a demo stand-in.
type DemoCredential struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
}
