package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DonationRequest is a request for blood posted by a user. The
// donation_status field moves through pending -> inprogress -> done
// (or canceled) but no transition is enforced server-side.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RequesterName     string             `bson:"requester_name" json:"requester_name"`
	RequesterEmail    string             `bson:"requester_email" json:"requester_email"`
	RecipientName     string             `bson:"recipient_name" json:"recipient_name"`
	RecipientDistrict string             `bson:"recipient_district" json:"recipient_district"`
	RecipientUpazila  string             `bson:"recipient_upazila" json:"recipient_upazila"`
	HospitalName      string             `bson:"hospital_name" json:"hospital_name"`
	FullAddress       string             `bson:"full_address" json:"full_address"`
	Group             string             `bson:"group" json:"group"` // blood group
	Date              string             `bson:"date" json:"date"`
	Time              string             `bson:"time" json:"time"`
	RequestMessage    string             `bson:"request_message" json:"request_message"`
	DonationStatus    string             `bson:"donation_status" json:"donation_status"`
}
