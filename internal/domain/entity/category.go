package entity

// Category representa una categoría de productos del catálogo (pestañas del POS).
type Category struct {
	ID   string // slug: coffee, tea, pastries, sandwiches, all
	Name string
}
