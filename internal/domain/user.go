package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection.
// The password is only ever stored as a one-way digest and is never
// written to JSON.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserName       string             `bson:"userName"      json:"userName"`
	HashedPassword string             `bson:"password"      json:"-"`
	EmailAddress   string             `bson:"emailAddress"  json:"emailAddress"`
}

// NewUser creates a user from an already computed password digest.
//
// The caller is responsible for hashing the plaintext password; NewUser
// never sees it.
func NewUser(userName, hashedPassword, emailAddress string) (*User, error) {
	user := &User{
		UserName:       userName,
		HashedPassword: hashedPassword,
		EmailAddress:   emailAddress,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the user has a name and a digest.
func (u *User) Validate() error {
	if strings.TrimSpace(u.UserName) == "" {
		return ErrEmptyUserName
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
