package entity

// Customer representa un cliente. Solo lectura para esta capa.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
