package models

// Item is a product descriptor as returned by the marketplace API.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// AddItemRequest carries the admin add-item form. The image file, when
// present, travels alongside as a multipart part named "image".
type AddItemRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
}

// UpdateItemRequest is a partial update: nil fields are left unchanged
// upstream, so the JSON body must omit them entirely.
type UpdateItemRequest struct {
	ItemID int64    `json:"item_id" binding:"required"`
	Price  *float64 `json:"price,omitempty"`
	Stock  *int     `json:"stock,omitempty"`
}
