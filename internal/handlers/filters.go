package handlers

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/niloykhan002/life-stream-server/internal/models"
)

// statusFilter builds the shared status query convention: the literal
// value "all" disables status filtering, any other value (including the
// empty string when the param is omitted) matches exactly.
func statusFilter(field, status string) bson.M {
	filter := bson.M{}
	if status != "all" {
		filter[field] = status
	}
	return filter
}

// donorFilter narrows the donor search by blood group, district and
// upazila only when all three are supplied together; otherwise the
// whole donor set matches.
func donorFilter(group, district, upazila string) bson.M {
	filter := bson.M{"role": models.RoleDonor}
	if group != "" && district != "" && upazila != "" {
		filter["blood_group"] = group
		filter["district"] = district
		filter["upazila"] = upazila
	}
	return filter
}
