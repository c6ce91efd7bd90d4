package dto

// AddItemRequest entrada para agregar una unidad de un producto a la orden.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest entrada para fijar la cantidad de una línea.
// Una cantidad menor a 1 elimina la línea.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest entrada para cerrar la orden en curso.
type CheckoutRequest struct {
	Branch string `json:"branch"`
}

// LineItemResponse una línea de la orden en curso.
type LineItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartResponse snapshot completo de la orden en curso con totales derivados.
// Todos los montos van con dos decimales; Display* incluye símbolo de moneda.
type CartResponse struct {
	Items        []LineItemResponse `json:"items"`
	Subtotal     string             `json:"subtotal"`
	TaxRate      string             `json:"tax_rate"`
	Tax          string             `json:"tax"`
	GrandTotal   string             `json:"grand_total"`
	DisplayTotal string             `json:"display_total"`
	TotalUnits   int                `json:"total_units"`
}

// CheckoutResponse resultado de cerrar la orden.
type CheckoutResponse struct {
	SaleID string `json:"sale_id"`
	Branch string `json:"branch"`
	Total  string `json:"total"`
}
