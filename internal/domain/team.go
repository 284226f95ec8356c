package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Player is embedded in a Team.
type Player struct {
	FirstName string  `bson:"firstName" json:"firstName"`
	LastName  string  `bson:"lastName"  json:"lastName"`
	Salary    float64 `bson:"salary"    json:"salary"`
}

// Team is a document in the teams collection.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name"          json:"name"`
	Mascot  string             `bson:"mascot"        json:"mascot"`
	Players []Player           `bson:"players"       json:"players"`
}

// NewTeam builds a team with an empty roster.
func NewTeam(name, mascot string) *Team {
	return &Team{
		Name:    name,
		Mascot:  mascot,
		Players: []Player{},
	}
}

// NewPlayer builds a player from the submitted fields.
func NewPlayer(firstName, lastName string, salary float64) Player {
	return Player{FirstName: firstName, LastName: lastName, Salary: salary}
}

// AddPlayer appends p to the end of the roster.
func (t *Team) AddPlayer(p Player) {
	t.Players = append(t.Players, p)
}
