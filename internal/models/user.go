package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored in a user's "role" field.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Image      string             `bson:"image" json:"image"`
	Role       string             `bson:"role" json:"role"`     // "donor", "volunteer", "admin"
	Status     string             `bson:"status" json:"status"` // "active", "blocked"
	BloodGroup string             `bson:"blood_group" json:"blood_group"`
	District   string             `bson:"district" json:"district"`
	Upazila    string             `bson:"upazila" json:"upazila"`
}
