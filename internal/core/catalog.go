package core

// ServiceCatalog maps each named haircut service to its default unit price
// in cents. The price is a form default only; the persisted amount is
// whatever the operator submitted, already multiplied by quantity.
var ServiceCatalog = map[string]int64{
	"Dry cut":                    2000,
	"Wet cut":                    3500,
	"Cut and finish":             4500,
	"Restyle":                    5500,
	"Fringe trim":                1000,
	"Children's Dry cut":         1500,
	"Children's Wet cut":         2500,
	"Children's Cut and finish":  3000,
	"Blow dry":                   3000,
	"Long hair blow dry":         3500,
	"Straightening/curling":      1000,
	"Consultation - 15min Free":  0,
	"T-section":                  7000,
	"Half head":                  8000,
	"Full head":                  9000,
	"Full head tint":             7000,
	"Root tint":                  6500,
	"Toner":                      1500,
	"Balayage":                   13500,
}

// DefaultServicePrice returns the catalog price for a service, or false if
// the service is not in the catalog.
func DefaultServicePrice(service string) (Money, bool) {
	cents, ok := ServiceCatalog[service]
	return Money{Cents: cents}, ok
}
