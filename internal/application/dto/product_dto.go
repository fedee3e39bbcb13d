package dto

import "github.com/jhoicas/lotes-api/internal/domain/entity"

// ProductDTO producto del catálogo en respuestas.
type ProductDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

// ToProductDTO convierte la entidad a su forma de transporte.
func ToProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL}
}
