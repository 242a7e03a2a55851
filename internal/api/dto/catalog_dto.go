package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CategoryRequest payload for category create/update.
type CategoryRequest struct {
	Name    string `json:"name"`
	StoreID string `json:"store_id,omitempty"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StoreID   string    `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse maps a domain category.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		StoreID:   category.StoreID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses maps a slice of categories.
func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, ToCategoryResponse(category))
	}
	return out
}

// ProductRequest payload for product create/update.
type ProductRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	SKU          string  `json:"sku"`
	MRP          float64 `json:"mrp"`
	SellingPrice float64 `json:"selling_price"`
	Brand        string  `json:"brand"`
	Image        string  `json:"image"`
	StoreID      string  `json:"store_id,omitempty"`
	CategoryID   *string `json:"category_id,omitempty"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	SKU          string    `json:"sku"`
	MRP          float64   `json:"mrp"`
	SellingPrice float64   `json:"selling_price"`
	Brand        string    `json:"brand,omitempty"`
	Image        string    `json:"image,omitempty"`
	StoreID      string    `json:"store_id"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProductResponse maps a domain product.
func ToProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		SKU:          product.SKU,
		MRP:          product.MRP,
		SellingPrice: product.SellingPrice,
		Brand:        product.Brand,
		Image:        product.Image,
		StoreID:      product.StoreID,
		CategoryID:   product.CategoryID,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

// ToProductResponses maps a slice of products.
func ToProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, ToProductResponse(product))
	}
	return out
}
