package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Composer is a document in the composers collection.
// Both names are required and each is unique across the collection.
type Composer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"firstName"     json:"firstName"`
	LastName  string             `bson:"lastName"      json:"lastName"`
}

// NewComposer builds a composer from the given names.
// The identifier is assigned by the store on insert.
func NewComposer(firstName, lastName string) (*Composer, error) {
	c := &Composer{
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Rename overwrites the mutable fields of the composer.
func (c *Composer) Rename(firstName, lastName string) error {
	updated := Composer{ID: c.ID, FirstName: firstName, LastName: lastName}
	if err := updated.Validate(); err != nil {
		return err
	}

	*c = updated
	return nil
}

// Validate checks that both names are present.
func (c *Composer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if strings.TrimSpace(c.LastName) == "" {
		return ErrEmptyLastName
	}
	return nil
}
