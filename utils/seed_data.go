package utils

import "github.com/princinho/arcadiabackend/models"

func allTemperatures() []int {
	return []int{3000, 4000, 5000, 6500}
}

func allFinishes() []string {
	return []string{models.FinishGold, models.FinishBlack, models.FinishSilver}
}

func price(v float64) *float64 { return &v }

// SampleProducts is the product fixture for a fresh deployment.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Slug:         "arcadia-halo",
			Name:         "Arcadia Halo",
			Subtitle:     "Circular luminous sculpture",
			Description:  "A levitating ring of light with precision-milled frame and crystal diffusion.",
			BasePrice:    price(1890.0),
			Models:       []string{"Halo"},
			Finishes:     allFinishes(),
			Sizes:        []string{models.SizeS, models.SizeM, models.SizeL, models.SizeXL},
			Temperatures: allTemperatures(),
			HeroImage:    "https://images.unsplash.com/photo-1504196606672-aef5c9cefc92?q=80&w=1600&auto=format&fit=crop",
			Gallery: []string{
				"https://images.unsplash.com/photo-1519710164239-da123dc03ef4?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1524758631624-e2822e304c36?q=80&w=1600&auto=format&fit=crop",
			},
			Tags: []string{"halo", "ring", "modern"},
		},
		{
			Slug:         "arcadia-prism",
			Name:         "Arcadia Prism",
			Subtitle:     "Faceted architectural statement",
			Description:  "Multi-faceted body that refracts light like a crystal with smart dimming.",
			BasePrice:    price(2390.0),
			Models:       []string{"Prism"},
			Finishes:     allFinishes(),
			Sizes:        []string{models.SizeS, models.SizeM, models.SizeL},
			Temperatures: allTemperatures(),
			HeroImage:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?q=80&w=1600&auto=format&fit=crop",
			Gallery:      []string{},
			Tags:         []string{"prism", "crystal", "futuristic"},
		},
		{
			Slug:         "arcadia-crescent",
			Name:         "Arcadia Crescent",
			Subtitle:     "Sculptural curve with diffused glow",
			Description:  "Soft curvature meets aerospace aluminum with satin finishes.",
			BasePrice:    price(2090.0),
			Models:       []string{"Crescent"},
			Finishes:     allFinishes(),
			Sizes:        []string{models.SizeM, models.SizeL, models.SizeXL},
			Temperatures: []int{3000, 4000, 5000},
			HeroImage:    "https://images.unsplash.com/photo-1505691723518-36a5ac3b2d91?q=80&w=1600&auto=format&fit=crop",
			Gallery:      []string{},
			Tags:         []string{"crescent", "curve", "elegant"},
		},
	}
}

func SampleFAQs() []models.FAQ {
	return []models.FAQ{
		{Question: "How do I install Arcadia chandeliers?", Answer: "Each product includes a precision mount, balance guide, and video tutorial."},
		{Question: "What is the lifespan?", Answer: "High-efficiency LEDs rated for 50,000 hours with replaceable drivers."},
		{Question: "Smart control?", Answer: "Works with Arcadia app, HomeKit, Alexa, and Google Home."},
	}
}

func SampleBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Slug:       "light-as-architecture",
			Title:      "Light as Architecture",
			Excerpt:    "How luminous forms shape space.",
			Content:    "In Arcadia, light is a structural medium...",
			CoverImage: "https://images.unsplash.com/photo-1496307653780-42ee777d4833?q=80&w=1600&auto=format&fit=crop",
		},
		{
			Slug:       "future-of-luminaires",
			Title:      "The Future of Luminaires",
			Excerpt:    "Materials, intelligence, sustainability.",
			Content:    "From aerospace alloys to neural dimming...",
			CoverImage: "https://images.unsplash.com/photo-1482192596544-9eb780fc7f66?q=80&w=1600&auto=format&fit=crop",
		},
	}
}
