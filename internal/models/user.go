package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin est l'unique axe d'autorisation : un utilisateur est admin ou
// il ne l'est pas.
const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin traite explicitement l'absence de rôle comme non-admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
