// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package site publishes the storefront's crawlable surface.

The sitemap lists every static page and every product page once per
supported locale, prefixed with the public site URL. Page metadata and the
schema.org business description are served for the same pages.
*/
package site

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
)

// sitemapNamespace is the sitemaps.org 0.9 schema.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticPages are the locale-scoped pages below the locale root, in order.
var StaticPages = []string{"about", "products", "trader", "contact"}

// URLSet is the <urlset> document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one <url> entry.
type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Service renders the sitemap and page metadata from the catalogue.
type Service struct {
	index     *catalog.Index
	siteURL   string
	telephone string
	now       func() time.Time
}

// NewService constructs a site [Service]. Trailing slashes on siteURL are
// dropped. telephone is the shop's public number.
func NewService(index *catalog.Index, siteURL, telephone string) *Service {
	return &Service{index: index, siteURL: strings.TrimRight(siteURL, "/"), telephone: telephone, now: time.Now}
}

// WithClock returns a copy of the service reading time from now.
func (service *Service) WithClock(now func() time.Time) *Service {
	clone := *service
	clone.now = now
	return &clone
}

// Paths returns every public path, grouped by page with one entry per locale.
func (service *Service) Paths() []string {
	paths := make([]string, 0, (1+len(StaticPages)+service.index.Len())*len(i18n.Locales))

	for _, locale := range i18n.Locales {
		paths = append(paths, localePath(locale, "/"))
	}
	for _, page := range StaticPages {
		for _, locale := range i18n.Locales {
			paths = append(paths, localePath(locale, "/"+page))
		}
	}
	for _, product := range service.index.Products() {
		for _, locale := range i18n.Locales {
			paths = append(paths, localePath(locale, productPath(product.ID)))
		}
	}

	return paths
}

// Sitemap builds the <urlset> with every entry stamped with the current date.
func (service *Service) Sitemap() URLSet {
	lastMod := service.now().UTC().Format(time.DateOnly)
	paths := service.Paths()

	set := URLSet{XMLNS: sitemapNamespace, URLs: make([]URL, 0, len(paths))}
	for _, path := range paths {
		set.URLs = append(set.URLs, URL{Loc: service.siteURL + path, LastMod: lastMod})
	}
	return set
}

// Render encodes the sitemap as an indented XML document with its header.
func (service *Service) Render() ([]byte, error) {
	body, err := xml.MarshalIndent(service.Sitemap(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("site: failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// productPath is the locale-relative page of a product. The id is escaped so
// any catalogue id yields a single valid path segment.
func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}

// localePath prefixes a locale-relative path with its locale root.
func localePath(locale i18n.Locale, path string) string {
	if path == "/" {
		return "/" + string(locale)
	}
	return "/" + string(locale) + path
}
