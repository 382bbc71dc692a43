package models

// AddToCartRequest is the body of POST /cart/items. The product descriptor is
// copied into the cart line; quantity defaults to 1 when omitted.
type AddToCartRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	ImageRef string  `json:"image_ref"`
	Quantity int     `json:"quantity" binding:"omitempty,gte=1"`
}

// CartLineView is one cart line as rendered to the client.
type CartLineView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"image_ref"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// CartView is the full cart state returned by every cart endpoint, so the
// client badge and totals always reflect the mutation just applied.
type CartView struct {
	Lines      []CartLineView `json:"lines"`
	TotalItems int            `json:"total_items"`
	TotalPrice float64        `json:"total_price"`
	Version    uint64         `json:"version"`
}
