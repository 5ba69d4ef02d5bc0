package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Review struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductSlug string        `bson:"product_slug" json:"product_slug"`
	Author      string        `bson:"author" json:"author"`
	Rating      int           `bson:"rating" json:"rating"`
	Comment     *string       `bson:"comment,omitempty" json:"comment"`
}
