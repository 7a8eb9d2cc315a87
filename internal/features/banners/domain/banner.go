package domain

import (
	"errors"
	"strings"
)

// LinkKind says where a banner sends the shopper.
type LinkKind string

const (
	LinkNone     LinkKind = "none"
	LinkProduct  LinkKind = "product"
	LinkRoute    LinkKind = "route"
	LinkExternal LinkKind = "external"
)

var (
	// ErrBannerIDRequired is returned when a delete has no banner id.
	ErrBannerIDRequired = errors.New("banner id is required")
)

// Banner is a storefront hero banner.
type Banner struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	// Link is a product id, a storefront route or an absolute URL.
	Link     string   `json:"link"`
	Title    string   `json:"title,omitempty"`
	LinkKind LinkKind `json:"link_kind"`
}

// ClassifyLink tells a product id ("64f..."), a route ("/product/64f...") and a URL apart.
func ClassifyLink(link string) LinkKind {
	link = strings.TrimSpace(link)
	lower := strings.ToLower(link)

	switch {
	case link == "":
		return LinkNone
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return LinkExternal
	case strings.HasPrefix(link, "/"):
		return LinkRoute
	default:
		return LinkProduct
	}
}

// WithLinkKind returns b with LinkKind derived from its link.
func (b Banner) WithLinkKind() Banner {
	b.LinkKind = ClassifyLink(b.Link)
	return b
}
