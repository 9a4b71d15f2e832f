package resources

// Money is an amount in a currency. Currency is ISO 4217 and defaults to
// USD on the server when empty.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// Percentage is a rate in the range 0-100.
type Percentage = float64

// BasisPoints is a rate in hundredths of a percent.
type BasisPoints = int

// Location narrows results to a state and country.
type Location struct {
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Institution identifies a lender, bank or issuer.
type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Product names an offered product.
type Product struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
