package models

// DefaultSeedCount is used when a seed request omits count.
const DefaultSeedCount = 6

// SeedRequest is the optional body of POST /api/seed. A negative count is
// rejected rather than counted back from the end of the sample set.
type SeedRequest struct {
	Count *int `json:"count" validate:"omitempty,gte=0"`
}

type SeedResponse struct {
	Created int `json:"created"`
}

// Resolve validates the request and returns how many samples to insert,
// truncated to the size of the built-in sample set.
func (r SeedRequest) Resolve() (int, error) {
	if err := validateStruct(r); err != nil {
		return 0, err
	}

	count := DefaultSeedCount
	if r.Count != nil {
		count = *r.Count
	}
	if n := len(sampleProducts); count > n {
		count = n
	}
	return count, nil
}

// SampleProducts returns a fresh copy of the built-in demo catalog.
func SampleProducts() []ProductInput {
	out := make([]ProductInput, len(sampleProducts))
	for i, s := range sampleProducts {
		out[i] = s.input()
	}
	return out
}

type sampleProduct struct {
	title, description string
	price              float64
	category, line     string
	image              string
	colors, sizes      []string
	featured           bool
	rating             float64
	tags               []string
}

func (s sampleProduct) input() ProductInput {
	title, description := s.title, s.description
	category, line := s.category, s.line
	price, rating := s.price, s.rating
	inStock, featured := true, s.featured

	return ProductInput{
		Title:       &title,
		Description: &description,
		Price:       &price,
		Category:    &category,
		Line:        &line,
		Images:      []string{s.image},
		Colors:      append([]string{}, s.colors...),
		Sizes:       append([]string{}, s.sizes...),
		InStock:     &inStock,
		Featured:    &featured,
		Rating:      &rating,
		Tags:        append([]string{}, s.tags...),
	}
}

var sampleProducts = []sampleProduct{
	{
		title:       "Swolez Power Tee",
		description: "Breathable performance tee with four-way stretch",
		price:       28.0,
		category:    CategoryTops,
		line:        LineGymwear,
		image:       "https://images.unsplash.com/photo-1592878849127-30a153c9fd1f?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"black", "white", "charcoal"},
		sizes:       []string{"S", "M", "L", "XL"},
		featured:    true,
		rating:      4.6,
		tags:        []string{"tee", "gym", "stretch"},
	},
	{
		title:       "Swolez Street Hoodie",
		description: "Heavyweight fleece with minimalist embroidery",
		price:       64.0,
		category:    CategoryHoodies,
		line:        LineStreetwear,
		image:       "https://images.unsplash.com/photo-1548883354-7622d03aca9b?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"ash", "black", "forest"},
		sizes:       []string{"M", "L", "XL", "XXL"},
		featured:    true,
		rating:      4.8,
		tags:        []string{"hoodie", "street", "fleece"},
	},
	{
		title:       "Swolez Flex Joggers",
		description: "Tapered athletic fit with zip pockets",
		price:       49.0,
		category:    CategoryBottoms,
		line:        LineGymwear,
		image:       "https://images.unsplash.com/photo-1559631688-59c1ff16398d?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"black", "navy"},
		sizes:       []string{"S", "M", "L", "XL"},
		rating:      4.5,
		tags:        []string{"joggers", "zip", "athletic"},
	},
	{
		title:       "Swolez Cargo Pants",
		description: "Relaxed cargo with reinforced knees",
		price:       59.0,
		category:    CategoryBottoms,
		line:        LineStreetwear,
		image:       "https://images.unsplash.com/photo-1539533018447-62fc810b90d9?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"khaki", "black"},
		sizes:       []string{"S", "M", "L", "XL", "XXL"},
		rating:      4.4,
		tags:        []string{"cargo", "street"},
	},
	{
		title:       "Swolez Lift Beanie",
		description: "Rib-knit beanie with woven label",
		price:       18.0,
		category:    CategoryAccessories,
		line:        LineStreetwear,
		image:       "https://images.unsplash.com/photo-1516571137133-1be29e37143a?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"black", "oxblood"},
		sizes:       []string{},
		rating:      4.2,
		tags:        []string{"beanie", "winter"},
	},
	{
		title:       "Swolez Mesh Tank",
		description: "Ultra-light mesh for max airflow",
		price:       24.0,
		category:    CategoryTops,
		line:        LineGymwear,
		image:       "https://images.unsplash.com/photo-1540573133985-87b6da6d54a9?auto=format&fit=crop&w=1200&q=60",
		colors:      []string{"white", "black"},
		sizes:       []string{"S", "M", "L"},
		rating:      4.3,
		tags:        []string{"tank", "mesh", "breathable"},
	},
}
