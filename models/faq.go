package models

import "go.mongodb.org/mongo-driver/v2/bson"

type FAQ struct {
	Id       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Question string        `bson:"question" json:"question"`
	Answer   string        `bson:"answer" json:"answer"`
}
