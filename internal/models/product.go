package models

// ProductCollection is the collection products are stored in.
const ProductCollection = "product"

// Product categories.
const (
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryHoodies     = "hoodies"
	CategoryAccessories = "accessories"
)

// Brand lines.
const (
	LineGymwear    = "gymwear"
	LineStreetwear = "streetwear"
)

// Product is a validated, normalized catalog record as returned by the API.
type Product struct {
	Title       string   `json:"title" bson:"title"`
	Description *string  `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	Line        string   `json:"line" bson:"line"`
	Images      []string `json:"images" bson:"images"`
	Colors      []string `json:"colors" bson:"colors"`
	Sizes       []string `json:"sizes" bson:"sizes"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
	Featured    bool     `json:"featured" bson:"featured"`
	Rating      *float64 `json:"rating" bson:"rating"`
	Tags        []string `json:"tags" bson:"tags"`
}

// ProductInput is the raw shape of a product, either a request body or a
// stored document. Pointers tell omitted fields apart from zero values.
type ProductInput struct {
	Title       *string  `json:"title" bson:"title" validate:"required"`
	Description *string  `json:"description" bson:"description"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" bson:"category" validate:"required,oneof=tops bottoms hoodies accessories"`
	Line        *string  `json:"line" bson:"line" validate:"required,oneof=gymwear streetwear"`
	Images      []string `json:"images" bson:"images"`
	Colors      []string `json:"colors" bson:"colors"`
	Sizes       []string `json:"sizes" bson:"sizes" validate:"dive,oneof=XS S M L XL XXL"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
	Featured    *bool    `json:"featured" bson:"featured"`
	Rating      *float64 `json:"rating" bson:"rating" validate:"omitempty,gte=0,lte=5"`
	Tags        []string `json:"tags" bson:"tags"`
}

// ProductFilter holds the optional equality filters of a product listing.
type ProductFilter struct {
	Line     string
	Category string
	Featured *bool
}

// CreateProductResponse is returned by POST /api/products.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// normalize applies defaults. The input must already be validated.
func (in ProductInput) normalize() Product {
	p := Product{
		Title:       *in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Category:    *in.Category,
		Line:        *in.Line,
		Images:      orEmpty(in.Images),
		Colors:      orEmpty(in.Colors),
		Sizes:       orEmpty(in.Sizes),
		InStock:     true,
		Featured:    false,
		Rating:      in.Rating,
		Tags:        orEmpty(in.Tags),
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
