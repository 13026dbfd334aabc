// Package scraper extracts a product name and price from a product page URL.
// It is best-effort by nature: the markup it pattern-matches belongs to third
// parties and changes without notice. When either the name or a numeric price
// cannot be found it fails with an explicit error rather than fabricating a
// value, so callers never insert placeholder items.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Product is the extraction result.
type Product struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

var (
	ErrNoName  = errors.New("scraper: product name not found")
	ErrNoPrice = errors.New("scraper: product price not found")
)

// Scraper fetches and parses product pages.
type Scraper struct {
	Client *http.Client
}

// New returns a scraper with a conservative request timeout.
func New() *Scraper {
	return &Scraper{Client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch downloads the page at url and extracts {name, price}. The error is
// non-nil unless both a non-empty name and a parseable, non-negative price
// were found.
func (s *Scraper) Fetch(ctx context.Context, url string) (Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, fmt.Errorf("scraper: invalid url: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; receipt-gen/1.0)")

	resp, err := s.Client.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("scraper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("scraper: unexpected status %d", resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return Product{}, fmt.Errorf("scraper: parse failed: %w", err)
	}
	return extract(root)
}

func extract(root *html.Node) (Product, error) {
	var name, price, title string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				prop := attr(n, "property") + attr(n, "itemprop") + attr(n, "name")
				content := strings.TrimSpace(attr(n, "content"))
				switch {
				case strings.Contains(prop, "og:title") && name == "":
					name = content
				case strings.Contains(prop, "og:price:amount"), strings.Contains(prop, "product:price:amount"):
					if price == "" {
						price = content
					}
				case prop == "price" && price == "":
					price = content
				}
			case "title":
				if n.FirstChild != nil && title == "" {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if name == "" {
		name = title
	}
	if name == "" {
		return Product{}, ErrNoName
	}

	normalized, ok := normalizePrice(price)
	if !ok {
		return Product{}, ErrNoPrice
	}
	return Product{Name: name, Price: normalized}, nil
}

// normalizePrice strips a leading currency symbol and validates the value as
// a non-negative decimal, reformatted to two places.
func normalizePrice(raw string) (string, bool) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if raw == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', 2, 64), true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
