package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Staff roles. Kitchen and Juice Bar double as KDS station names.
const (
	RoleOwner    = "Owner"
	RoleWaitress = "Waitress"
	RoleKitchen  = "Kitchen"
	RoleJuiceBar = "Juice Bar"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Username  string    `gorm:"type:varchar(255);unique;not null" json:"username"`
	PIN       string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'Waitress'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPIN hashes and stores the 4-digit login PIN.
func (u *User) SetPIN(pin string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PIN = string(hashed)
	return nil
}

// CorrectPIN reports whether the candidate matches the stored hash.
func (u *User) CorrectPIN(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PIN), []byte(candidate)) == nil
}

// IsStation reports whether the role names a preparation station.
func IsStation(role string) bool {
	return role == RoleKitchen || role == RoleJuiceBar
}
