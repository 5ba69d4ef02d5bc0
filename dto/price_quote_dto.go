package dto

import "github.com/princinho/arcadiabackend/pricing"

// PriceQuoteDTO fields are pointers so that a missing field is rejected
// while empty strings and zero still reach the calculator.
type PriceQuoteDTO struct {
	Slug        string  `json:"slug" binding:"required"`
	Finish      *string `json:"finish" binding:"required"`
	Size        *string `json:"size" binding:"required"`
	Temperature *int    `json:"temperature" binding:"required"`
}

func (d PriceQuoteDTO) Selection() pricing.Selection {
	return pricing.Selection{
		Finish:      *d.Finish,
		Size:        *d.Size,
		Temperature: *d.Temperature,
	}
}

type PriceQuoteResponse struct {
	Price float64 `json:"price"`
}
