package domain

// Property represents a single listing in the catalog
type Property struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Status      string `json:"status"` // For Sale, For Rent, ...
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	SquareFeet  int    `json:"square_feet"`
	Garage      int    `json:"garage"`
	IsFeatured  bool   `json:"is_featured"`
	Image       string `json:"image"`
}

// CreatePropertyRequest is the request to add a property to the catalog
type CreatePropertyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
	SquareFeet  int    `json:"square_feet"`
	Garage      int    `json:"garage"`
	IsFeatured  bool   `json:"is_featured"`
	Image       string `json:"image"`
}
