package entity

// Product representa un producto del catálogo. Desde el punto de vista del motor de lotes
// es inmutable: el catálogo (altas, nombres, imágenes) lo administra un colaborador externo.
type Product struct {
	ID       int64
	Name     string
	ImageURL *string // puede ser NULL en la base
}
