package models

type AddCartItemRequest struct {
	ProductID int    `json:"product_id" form:"product_id" binding:"required,gt=0"`
	Size      string `json:"size" form:"size"`
}

// UpdateCartItemRequest takes the quantity as a float so non-integer
// input reaches the cart and is rejected there instead of failing binding.
type UpdateCartItemRequest struct {
	Quantity *float64 `json:"quantity" form:"quantity" binding:"required"`
}

type ProductQuery struct {
	Category string   `form:"category"`
	Brands   []string `form:"brand"`
	MinPrice *int     `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *int     `form:"max_price" binding:"omitempty,gte=0"`
	InStock  bool     `form:"in_stock"`
	Sort     string   `form:"sort"`
}

type SearchQuery struct {
	Q           string `form:"q"`
	Relevance   *bool  `form:"relevance"`
	Brand       string `form:"brand"`
	MinPrice    *int   `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice    *int   `form:"max_price" binding:"omitempty,gte=0"`
	InStock     bool   `form:"in_stock"`
	HasDiscount bool   `form:"has_discount"`
	Sort        string `form:"sort"`
}

// LiveSearchMessage is what the client sends on the live search socket
// after each keystroke.
type LiveSearchMessage struct {
	Query string `json:"query"`
}
