package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is a free-text role held by a person.
type Role struct {
	Text string `bson:"text" json:"text"`
}

// Dependent is a person who depends on the parent Person.
type Dependent struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName"  json:"lastName"`
}

// Person is a document in the people collection. No field is required.
type Person struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName  string             `bson:"firstName"     json:"firstName"`
	LastName   string             `bson:"lastName"      json:"lastName"`
	Roles      []Role             `bson:"roles"         json:"roles"`
	Dependents []Dependent        `bson:"dependents"    json:"dependents"`
	BirthDate  string             `bson:"birthDate"     json:"birthDate"`
}

// NewPerson builds a person. Nil slices are normalized so the document
// always stores and renders empty arrays.
func NewPerson(firstName, lastName, birthDate string, roles []Role, dependents []Dependent) *Person {
	if roles == nil {
		roles = []Role{}
	}
	if dependents == nil {
		dependents = []Dependent{}
	}

	return &Person{
		FirstName:  firstName,
		LastName:   lastName,
		Roles:      roles,
		Dependents: dependents,
		BirthDate:  birthDate,
	}
}
