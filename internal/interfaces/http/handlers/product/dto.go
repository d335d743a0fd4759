package product

import (
	"trackd/internal/application/product/usecases"
)

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Prefix      string `json:"prefix" binding:"required,min=1,max=64"`
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// ToCommand converts the request to a create product command.
func (r *CreateProductRequest) ToCommand() usecases.CreateProductCommand {
	return usecases.CreateProductCommand{
		Prefix:      r.Prefix,
		Name:        r.Name,
		Description: r.Description,
		Owner:       r.Owner,
	}
}

// UpdateProductRequest represents the request body for updating a product.
// The prefix is taken from the URL and cannot be changed.
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// ToCommand converts the request to an update product command.
func (r *UpdateProductRequest) ToCommand(prefix string) usecases.UpdateProductCommand {
	return usecases.UpdateProductCommand{
		Prefix:      prefix,
		Name:        r.Name,
		Description: r.Description,
		Owner:       r.Owner,
	}
}
