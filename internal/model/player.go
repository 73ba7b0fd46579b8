package model

// Role is a player's primary discipline. Closed set; feedback compares roles
// by exact equality.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketkeeper Role = "Wicketkeeper"
)

// Player is one entry in the reference catalog. IDs are assigned once at
// ingestion and are the only way the engine refers to a player; there is no
// name or alias resolution at guess time.
type Player struct {
	ID       string   `json:"id" bson:"_id"`
	FullName string   `json:"fullName" bson:"fullName"`
	Country  string   `json:"country" bson:"country"`
	Flag     string   `json:"flag" bson:"flag"`
	Role     Role     `json:"role" bson:"role"`
	Teams    []string `json:"teams,omitempty" bson:"teams,omitempty"`
}
