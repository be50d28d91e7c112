// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package site

import (
	"strings"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/apperr"
	"github.com/taibuivan/super3000/internal/platform/constants"
	"github.com/taibuivan/super3000/internal/platform/validate"
)

// # Page Metadata

// PageHome is the locale root. The other page names are [StaticPages].
const PageHome = "home"

// Twitter card kinds.
const (
	cardLarge   = "summary_large_image"
	cardSummary = "summary"
)

// pageCopy holds the title and description of each static page.
var pageCopy = map[string]struct{ title, description catalog.Text }{
	PageHome: {
		title: catalog.Text{
			i18n.Arabic:  "سوبر 3000 | زيوت وقطع غيار السيارات",
			i18n.English: "Super 3000 | Car Oils and Spare Parts",
		},
		description: catalog.Text{
			i18n.Arabic:  "زيوت وفلاتر وقطع غيار أصلية بمناشئ متعددة، ابحث بالماركة والموديل وسنة الصنع.",
			i18n.English: "Genuine oils, filters and spare parts from several origins. Search by make, model and year.",
		},
	},
	"about": {
		title: catalog.Text{
			i18n.Arabic:  "من نحن | سوبر 3000",
			i18n.English: "About Us | Super 3000",
		},
		description: catalog.Text{
			i18n.Arabic:  "تعرف على سوبر 3000 في نبروه، الدقهلية.",
			i18n.English: "Meet Super 3000 in Nabaroh, Dakahlia.",
		},
	},
	"products": {
		title: catalog.Text{
			i18n.Arabic:  "المنتجات | سوبر 3000",
			i18n.English: "Products | Super 3000",
		},
		description: catalog.Text{
			i18n.Arabic:  "تصفح الكتالوج حسب الفئة والمنشأ والسيارة.",
			i18n.English: "Browse the catalogue by category, origin and vehicle.",
		},
	},
	"trader": {
		title: catalog.Text{
			i18n.Arabic:  "تسجيل التجار | سوبر 3000",
			i18n.English: "Trader Registration | Super 3000",
		},
		description: catalog.Text{
			i18n.Arabic:  "سجل نشاطك التجاري للحصول على أسعار الجملة.",
			i18n.English: "Register your business for wholesale pricing.",
		},
	},
	"contact": {
		title: catalog.Text{
			i18n.Arabic:  "تواصل معنا | سوبر 3000",
			i18n.English: "Contact Us | Super 3000",
		},
		description: catalog.Text{
			i18n.Arabic:  "راسلنا عبر واتساب أو البريد الإلكتروني.",
			i18n.English: "Reach us on WhatsApp or by email.",
		},
	},
}

// Meta is the head metadata of one page in one locale.
type Meta struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Locale      i18n.Locale            `json:"locale"`
	Direction   string                 `json:"direction"`
	Canonical   string                 `json:"canonical"`
	Alternates  map[i18n.Locale]string `json:"alternates"`
	OpenGraph   OpenGraph              `json:"open_graph"`
	Twitter     TwitterCard            `json:"twitter"`
}

// OpenGraph carries the og:* properties.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"site_name"`
	Type        string `json:"type"`
	Locale      string `json:"locale"`
}

// TwitterCard carries the twitter:* properties.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

/*
PageMeta returns the metadata of a static page.

Parameters:
  - page: string ([PageHome] or one of [StaticPages]; empty means home)
  - locale: i18n.Locale

Returns:
  - *Meta
  - error: VALIDATION_ERROR for an unknown page
*/
func (service *Service) PageMeta(page string, locale i18n.Locale) (*Meta, error) {
	if page == "" {
		page = PageHome
	}

	text, ok := pageCopy[page]
	err := (&validate.Validator{}).
		Custom("page", !ok, "Must be one of: "+strings.Join(append([]string{PageHome}, StaticPages...), ", ")).
		Err()
	if err != nil {
		return nil, err
	}

	path := "/"
	if page != PageHome {
		path = "/" + page
	}

	return service.meta(path, locale, text.title.In(locale), text.description.In(locale), cardLarge), nil
}

/*
ProductMeta returns the metadata of a product page.

Returns:
  - *Meta: titled "<name> | Super 3000"
  - error: NOT_FOUND when the id is not in the catalogue
*/
func (service *Service) ProductMeta(id string, locale i18n.Locale) (*Meta, error) {
	product, ok := service.index.Product(id)
	if !ok {
		return nil, apperr.NotFound("Product")
	}

	name := product.Name.In(locale)
	if name == "" {
		name = product.ID
	}

	return service.meta(productPath(product.ID), locale, name+" | "+constants.SiteName, product.Description.In(locale), cardSummary), nil
}

func (service *Service) meta(path string, locale i18n.Locale, title, description, card string) *Meta {
	alternates := make(map[i18n.Locale]string, len(i18n.Locales))
	for _, alternate := range i18n.Locales {
		alternates[alternate] = service.siteURL + localePath(alternate, path)
	}
	canonical := alternates[locale]

	return &Meta{
		Title:       title,
		Description: description,
		Locale:      locale,
		Direction:   i18n.Direction(locale),
		Canonical:   canonical,
		Alternates:  alternates,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    constants.SiteName,
			Type:        "website",
			Locale:      i18n.OpenGraphLocale(locale),
		},
		Twitter: TwitterCard{Card: card, Title: title, Description: description},
	}
}

// # Structured Data

const schemaContext = "https://schema.org"

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

// Organization is a schema.org Organization.
type Organization struct {
	Context string        `json:"@context"`
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	URL     string        `json:"url"`
	Email   string        `json:"email"`
	Address PostalAddress `json:"address"`
}

// OpeningHours is a schema.org OpeningHoursSpecification.
type OpeningHours struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// LocalBusiness is a schema.org AutoPartsStore.
type LocalBusiness struct {
	Organization
	Telephone    string         `json:"telephone"`
	AreaServed   string         `json:"areaServed"`
	OpeningHours []OpeningHours `json:"openingHoursSpecification"`
}

// Organization returns the JSON-LD description of the company.
func (service *Service) Organization(locale i18n.Locale) Organization {
	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		Name:    constants.SiteName,
		URL:     service.siteURL,
		Email:   constants.SiteEmail,
		Address: address(locale),
	}
}

// LocalBusiness returns the JSON-LD description of the shop itself.
func (service *Service) LocalBusiness(locale i18n.Locale) LocalBusiness {
	organization := service.Organization(locale)
	organization.Type = "AutoPartsStore"

	return LocalBusiness{
		Organization: organization,
		Telephone:    service.telephone,
		AreaServed:   constants.SiteCountry,
		OpeningHours: []OpeningHours{{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: append([]string{}, constants.SiteOpeningDays...),
			Opens:     constants.SiteOpens,
			Closes:    constants.SiteCloses,
		}},
	}
}

func address(locale i18n.Locale) PostalAddress {
	if locale == i18n.Arabic {
		return PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   constants.SiteAddressArabic,
			AddressLocality: constants.SiteLocalityArabic,
			AddressRegion:   constants.SiteRegionArabic,
			AddressCountry:  constants.SiteCountry,
		}
	}
	return PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   constants.SiteAddressEnglish,
		AddressLocality: constants.SiteLocalityEnglish,
		AddressRegion:   constants.SiteRegionEnglish,
		AddressCountry:  constants.SiteCountry,
	}
}
