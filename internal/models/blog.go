package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Blog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	Thumbnail  string             `bson:"thumbnail" json:"thumbnail"`
	Content    string             `bson:"content" json:"content"`
	BlogStatus string             `bson:"blog_status" json:"blog_status"` // "draft", "published"
}
