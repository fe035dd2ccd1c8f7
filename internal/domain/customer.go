package domain

// Customer references the person renting a tool. Rentals without an
// explicit customer fall back to the well-known default customer.
type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}
