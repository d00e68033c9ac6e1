// Package extract pulls store price listings out of saved HTML documents
// (scraper dumps, shared pages) so they can be grouped by canonical
// store. It parses markup only; fetching the document is out of scope.
package extract

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shelfscout/appcore/internal/logger"
	"github.com/shelfscout/appcore/internal/stores"
)

// Listing is one extracted store/price row.
type Listing struct {
	// Store is the display name: the canonical brand when the raw name
	// matched the alias table, otherwise the raw name as found. This
	// package's fallback policy is "show what the page said".
	Store string `json:"store" yaml:"store"`

	// RawStore is the store name exactly as it appeared in the markup.
	RawStore string `json:"raw_store" yaml:"raw_store"`

	// Matched reports whether RawStore normalized to a canonical brand.
	Matched bool `json:"matched" yaml:"matched"`

	Product string `json:"product,omitempty" yaml:"product,omitempty"`
	Price   string `json:"price,omitempty" yaml:"price,omitempty"`
}

// Result holds all listings extracted from one document.
type Result struct {
	Listings  []Listing `json:"listings" yaml:"listings"`
	Unmatched int       `json:"unmatched" yaml:"unmatched"`
}

// Extractor parses listing documents.
type Extractor struct {
	log *logger.Logger
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{
		log: logger.Global().WithComponent("extract"),
	}
}

// Extract parses an HTML document and returns its store price listings.
// Two shapes are recognized: elements annotated with data-store
// attributes, and plain tables whose rows lead with the store name and
// end with the price.
func (e *Extractor) Extract(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Listings: make([]Listing, 0),
	}

	// Annotated listing elements
	doc.Find("[data-store]").Each(func(i int, s *goquery.Selection) {
		raw, _ := s.Attr("data-store")
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}

		listing := e.newListing(raw)

		if price, ok := s.Attr("data-price"); ok {
			listing.Price = strings.TrimSpace(price)
		} else {
			listing.Price = strings.TrimSpace(s.Find(".price").First().Text())
		}
		if product, ok := s.Attr("data-product"); ok {
			listing.Product = strings.TrimSpace(product)
		} else {
			listing.Product = strings.TrimSpace(s.Find(".product, .name").First().Text())
		}

		result.Listings = append(result.Listings, listing)
	})

	// Plain table rows: store | [product] | price
	doc.Find("table tr").Each(func(i int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 2 {
			return
		}

		raw := strings.TrimSpace(cells.First().Text())
		if raw == "" {
			return
		}

		listing := e.newListing(raw)
		listing.Price = strings.TrimSpace(cells.Last().Text())
		if cells.Length() > 2 {
			listing.Product = strings.TrimSpace(cells.Eq(1).Text())
		}

		result.Listings = append(result.Listings, listing)
	})

	for _, l := range result.Listings {
		if !l.Matched {
			result.Unmatched++
		}
	}

	e.log.Event(logger.DebugLevel).
		Int("listings", len(result.Listings)).
		Int("unmatched", result.Unmatched).
		Msg("Extracted listings")

	return result, nil
}

func (e *Extractor) newListing(raw string) Listing {
	canonical, ok := stores.Canonical(raw)
	e.log.NormalizeEvent(raw, canonical, ok)

	listing := Listing{
		RawStore: raw,
		Matched:  ok,
		Store:    canonical,
	}
	if !ok {
		listing.Store = raw
	}
	return listing
}
