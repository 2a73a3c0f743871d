package catalog

import "clothinghub/internal/models"

// SeedSource is one curated raw feed bundled with the binary.
type SeedSource struct {
	Name string
	Type string
	Raw  []models.RawProduct
}

func floatPtr(v float64) *float64 { return &v }

// SeedSources returns the curated fallback feeds used when no ingested
// snapshot exists yet.
func SeedSources() []SeedSource {
	return []SeedSource{
		{
			Name: "Abercrombie",
			Type: models.SourceManual,
			Raw: []models.RawProduct{
				{
					ID:           "anf-001",
					Name:         "Essential Crew Sweatshirt",
					Brand:        "Abercrombie & Fitch",
					Description:  "Heavyweight fleece crewneck with a relaxed fit.",
					ProductURL:   "https://www.abercrombie.com/shop/us/p/essential-crew-001",
					ImageURL:     "https://img.abercrombie.com/is/image/anf/anf-001.jpg",
					Price:        floatPtr(60),
					Currency:     "USD",
					CategoryPath: "Men > Hoodies & Sweatshirts",
					Gender:       "mens",
					Colors:       []string{"Heather Grey"},
					Sizes:        []string{"S", "M", "L", "XL"},
				},
				{
					ID:           "anf-002",
					Name:         "Baggy Carpenter Jean",
					Brand:        "Abercrombie & Fitch",
					ProductURL:   "https://www.abercrombie.com/shop/us/p/baggy-carpenter-002",
					ImageURL:     "https://img.abercrombie.com/is/image/anf/anf-002.jpg",
					Price:        floatPtr(90),
					Currency:     "USD",
					CategoryPath: "Men > Jeans",
					Gender:       "mens",
					Colors:       []string{"Medium Wash"},
					Sizes:        []string{"30x30", "32x32", "34x32"},
				},
			},
		},
		{
			Name: "Zara",
			Type: models.SourceManual,
			Raw: []models.RawProduct{
				{
					ID:           "zr-101",
					Name:         "Cargo Trousers",
					ProductURL:   "https://www.zara.com/us/en/cargo-trousers-p101.html",
					ImageURL:     "https://static.zara.net/photos/zr-101.jpg",
					Price:        floatPtr(49.9),
					Currency:     "USD",
					CategoryPath: "MAN > Trousers > Cargo",
					Gender:       "mens",
					Colors:       []string{"olive"},
					Sizes:        []string{"S", "M", "L"},
				},
			},
		},
		{
			Name: "Nike",
			Type: models.SourceManual,
			Raw: []models.RawProduct{
				{
					ID:           "nk-501",
					Name:         "Dunk Low Retro",
					Brand:        "Nike, Inc.",
					Description:  "Retro basketball sneaker in classic panda colorway.",
					ProductURL:   "https://www.nike.com/t/dunk-low-retro-501",
					ImageURL:     "https://static.nike.com/a/images/nk-501.png",
					Price:        floatPtr(115),
					Currency:     "USD",
					CategoryPath: "Shoes > Sneakers",
					Colors:       []string{"blk", "white"},
					Sizes:        []string{"8", "9", "10", "11"},
					Tags:         []string{"Streetwear"},
				},
			},
		},
		{
			Name: "Uniqlo",
			Type: models.SourceManual,
			Raw: []models.RawProduct{
				{
					ID:           "uq-201",
					Name:         "Oversized Graphic Tee",
					Brand:        "UNIQLO U",
					ProductURL:   "https://www.uniqlo.com/us/en/products/uq-201",
					ImageURL:     "https://image.uniqlo.com/UQ/uq-201.jpg",
					Price:        floatPtr(19.9),
					Currency:     "USD",
					CategoryPath: "Men > T-Shirts",
					Gender:       "mens",
					Colors:       []string{"white"},
					Sizes:        []string{"XS", "S", "M", "L", "XL"},
				},
			},
		},
	}
}
