package product

import "time"

type Product struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Size      string    `json:"size"`
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProductParams struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
	Stock    int     `json:"stock"`
	ImageURL *string `json:"image_url"`
}
