package models

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	FinishGold   = "gold"
	FinishBlack  = "black"
	FinishSilver = "silver"
)

const (
	SizeS  = "S"
	SizeM  = "M"
	SizeL  = "L"
	SizeXL = "XL"
)

// Product is a luminaire in the catalog. BasePrice is a pointer because
// older documents may lack it; pricing falls back to a default then.
type Product struct {
	Id           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Slug         string        `bson:"slug" json:"slug"`
	Name         string        `bson:"name" json:"name"`
	Subtitle     string        `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice    *float64      `bson:"base_price,omitempty" json:"base_price"`
	Models       []string      `bson:"models" json:"models"`
	Finishes     []string      `bson:"finishes" json:"finishes"`
	Sizes        []string      `bson:"sizes" json:"sizes"`
	Temperatures []int         `bson:"temperatures" json:"temperatures"`
	HeroImage    string        `bson:"hero_image,omitempty" json:"hero_image,omitempty"`
	Gallery      []string      `bson:"gallery" json:"gallery"`
	Tags         []string      `bson:"tags" json:"tags"`
}
