package entity

// Client representa un cliente del punto de venta.
type Client struct {
	ID      int64
	Name    string
	RUT     string
	Email   string
	Phone   string
	Address string
}
