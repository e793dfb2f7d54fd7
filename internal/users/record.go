package users

import (
	"time"

	"github.com/dmitrijs2005/techmarket/internal/cryptox"
)

// Record is a registered account as persisted in the users map.
//
// LegacyPassword is only read: older stores kept plaintext passwords, and
// such records are upgraded to Credential on the next successful login.
type Record struct {
	Email          string                `json:"email"`
	Name           string                `json:"name"`
	Phone          string                `json:"phone,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	Credential     *cryptox.PasswordHash `json:"credential,omitempty"`
	LegacyPassword string                `json:"password,omitempty"`
}

// FirstName returns the first word of Name.
func (r Record) FirstName() string {
	for i, c := range r.Name {
		if c == ' ' {
			return r.Name[:i]
		}
	}
	return r.Name
}
