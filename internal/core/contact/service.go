// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"

	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/constants"
	"github.com/taibuivan/super3000/internal/platform/metrics"
	"github.com/taibuivan/super3000/internal/platform/validate"
	"github.com/taibuivan/super3000/pkg/whatsapp"
)

// Field length caps for free-text form input.
const (
	maxShortField = 120
	maxLongField  = 2000
)

// # Service Layer

// Service validates contact forms and builds their chat links.
type Service struct {
	number string
	logger *slog.Logger
}

// NewService constructs a contact [Service] that links to number.
func NewService(number string, logger *slog.Logger) *Service {
	return &Service{number: number, logger: logger}
}

/*
SubmitInquiry validates a contact form and renders its chat link.

Parameters:
  - ctx: context.Context
  - locale: i18n.Locale (message language)
  - form: InquiryForm

Returns:
  - *Link: Message and wa.me URL
  - error: VALIDATION_ERROR when a field is missing or the phone is too short
*/
func (service *Service) SubmitInquiry(ctx context.Context, locale i18n.Locale, form InquiryForm) (*Link, error) {
	err := (&validate.Validator{}).
		Required("name", form.Name).
		MaxLen("name", form.Name, maxShortField).
		Required("phone", form.Phone).
		MinDigits("phone", form.Phone, constants.MinPhoneDigits).
		Required("city", form.City).
		MaxLen("city", form.City, maxShortField).
		Required("message", form.Message).
		MaxLen("message", form.Message, maxLongField).
		Err()
	if err != nil {
		return nil, err
	}

	return service.link(ctx, KindInquiry, InquiryMessage(locale, form)), nil
}

/*
SubmitTrader validates a trader registration and renders its chat link.

Parameters:
  - ctx: context.Context
  - locale: i18n.Locale (message language)
  - form: TraderForm (tax record and notes are optional)

Returns:
  - *Link: Message and wa.me URL
  - error: VALIDATION_ERROR when a required field is missing
*/
func (service *Service) SubmitTrader(ctx context.Context, locale i18n.Locale, form TraderForm) (*Link, error) {
	err := (&validate.Validator{}).
		Required("business_name", form.BusinessName).
		MaxLen("business_name", form.BusinessName, maxShortField).
		Required("contact_person", form.ContactPerson).
		MaxLen("contact_person", form.ContactPerson, maxShortField).
		Required("phone", form.Phone).
		Required("city", form.City).
		MaxLen("city", form.City, maxShortField).
		MaxLen("tax_record", form.TaxRecord, maxShortField).
		MaxLen("notes", form.Notes, maxLongField).
		Err()
	if err != nil {
		return nil, err
	}

	return service.link(ctx, KindTrader, TraderMessage(locale, form)), nil
}

// ProductLink returns the request link for a product. It never fails.
func (service *Service) ProductLink(locale i18n.Locale, productName, categoryName string) string {
	metrics.RecordContactLink(KindProduct)
	return whatsapp.BuildLink(service.number, ProductMessage(locale, productName, categoryName))
}

// Channel returns the shop's public contact details.
func (service *Service) Channel() Channel {
	return Channel{SiteName: constants.SiteName, Email: constants.SiteEmail, WhatsAppURL: service.WhatsAppURL()}
}

// WhatsAppURL returns the bare chat link, with no message.
func (service *Service) WhatsAppURL() string {
	return whatsapp.BuildLink(service.number, "")
}

func (service *Service) link(ctx context.Context, kind, message string) *Link {
	metrics.RecordContactLink(kind)
	service.logger.InfoContext(ctx, "contact_link_built", slog.String("kind", kind))

	return &Link{Message: message, URL: whatsapp.BuildLink(service.number, message)}
}
