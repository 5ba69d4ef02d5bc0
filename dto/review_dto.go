package dto

import "github.com/princinho/arcadiabackend/models"

type CreateReviewDTO struct {
	ProductSlug string  `json:"product_slug" binding:"required,slug"`
	Author      string  `json:"author" binding:"required"`
	Rating      int     `json:"rating" binding:"required,min=1,max=5"`
	Comment     *string `json:"comment"`
}

func (d CreateReviewDTO) Review() models.Review {
	return models.Review{
		ProductSlug: d.ProductSlug,
		Author:      d.Author,
		Rating:      d.Rating,
		Comment:     d.Comment,
	}
}
