package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRole is assigned to every newly created profile.
const DefaultRole = "user"

var (
	nationalIDPattern = regexp.MustCompile(`^\d{14}$`)
	phonePattern      = regexp.MustCompile(`^01[0125]\d{8}$`)
)

// User is a citizen profile as stored in the users collection. A profile
// document is created on registration, or lazily on the first authenticated
// profile fetch if the identity predates the record.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	NationalID string             `bson:"nationalId" json:"nationalId"`
	Role       string             `bson:"role" json:"role"`
	Password   string             `bson:"password,omitempty" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// IsValidNationalID checks the 14-digit Egyptian national id format.
func IsValidNationalID(id string) bool {
	return nationalIDPattern.MatchString(id)
}

// IsValidPhone checks the Egyptian mobile number format (010/011/012/015).
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
