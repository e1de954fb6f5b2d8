package models

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// CartItem is one line of a cart. Price is the unit price with any
// discount already applied.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Size     *string `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
}

type CartSummary struct {
	Subtotal          int  `json:"subtotal"`
	Total             int  `json:"total"`
	ItemCount         int  `json:"itemCount"`
	DistinctItemCount int  `json:"items"`
	IsEmpty           bool `json:"isEmpty"`
	AverageUnitPrice  int  `json:"averagePrice"`
}

// CartState is what a cart publishes to its subscribers.
type CartState struct {
	Items   []CartItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}

type InvalidCartItem struct {
	Index int    `json:"index"`
	ID    int    `json:"id"`
	Error string `json:"error"`
}

type CartValidation struct {
	Valid        bool              `json:"valid"`
	Errors       []string          `json:"errors"`
	InvalidItems []InvalidCartItem `json:"invalidItems"`
}
