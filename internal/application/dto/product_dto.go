package dto

// ProductResponse salida de un producto del catálogo.
// Price viaja como string con dos decimales (frontera de presentación).
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url,omitempty"`
}

// CategoryResponse una categoría del catálogo.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
