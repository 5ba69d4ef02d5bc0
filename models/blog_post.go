package models

import "go.mongodb.org/mongo-driver/v2/bson"

type BlogPost struct {
	Id         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Slug       string        `bson:"slug" json:"slug"`
	Title      string        `bson:"title" json:"title"`
	Excerpt    string        `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content    string        `bson:"content" json:"content"`
	CoverImage string        `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
}
