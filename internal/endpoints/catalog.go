// Package endpoints defines the API endpoint catalog and derives full
// endpoint URLs from a resolved base URL.
package endpoints

// Name is a logical API endpoint name.
type Name string

// Logical endpoint names.
const (
	Products     Name = "PRODUCTS"
	Stores       Name = "STORES"
	Prices       Name = "PRICES"
	Cheapest     Name = "CHEAPEST"
	QuickCompare Name = "QUICK_COMPARE"
	Profile      Name = "PROFILE"
	Scan         Name = "SCAN"
)

// catalog maps logical endpoint names to path fragments. Each fragment
// begins and ends with "/"; the builder concatenates verbatim and never
// reconciles slashes, so the base URL must not carry a trailing slash.
var catalog = map[Name]string{
	Products:     "/products/",
	Stores:       "/stores/",
	Prices:       "/prices/",
	Cheapest:     "/cheapest/",
	QuickCompare: "/quick-compare/",
	Profile:      "/profile/",
	Scan:         "/scan/",
}

// Names returns the catalog's endpoint names in a stable order.
func Names() []Name {
	return []Name{Products, Stores, Prices, Cheapest, QuickCompare, Profile, Scan}
}

// Path returns the path fragment for a logical endpoint name.
func Path(name Name) (string, bool) {
	p, ok := catalog[name]
	return p, ok
}

// URL concatenates the base URL with the endpoint's path fragment. A
// missing base URL propagates as a relative path string rather than an
// error; validation belongs to the HTTP layer, not here.
func URL(base string, name Name) string {
	return base + catalog[name]
}

// BuildAll derives the complete endpoint URL set for a base URL.
func BuildAll(base string) map[Name]string {
	urls := make(map[Name]string, len(catalog))
	for name, path := range catalog {
		urls[name] = base + path
	}
	return urls
}
