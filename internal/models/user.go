package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the closed set of account roles. Anything outside it is rejected at
// registration and denied by every policy check.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole validates a raw role string against the known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string        `bson:"username" json:"username"`
	Password  string        `bson:"password" json:"-"`
	Role      Role          `bson:"role" json:"role"`
	Team      []string      `bson:"team,omitempty" json:"team,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
