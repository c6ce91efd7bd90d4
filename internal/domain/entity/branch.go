package entity

// Branch representa una sucursal de la cadena (inventario y reportes son por sucursal).
type Branch struct {
	ID   string
	Name string
}
