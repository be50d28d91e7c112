// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact turns storefront forms into pre-filled WhatsApp conversations.

Nothing is stored or sent from the server: a validated form is rendered into a
localized message and returned as a click-to-chat link for the client to open.

# Core Responsibility

  - Inquiry: the general contact form (name, phone, governorate, message).
  - Trader: the wholesale registration form.
  - Product: the "request via WhatsApp" link attached to every product.
*/
package contact

// # Forms

// InquiryForm is a general contact request from a trader.
type InquiryForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Message string `json:"message"`
}

// TraderForm is a wholesale account registration request.
type TraderForm struct {
	BusinessName  string `json:"business_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	City          string `json:"city"`
	TaxRecord     string `json:"tax_record"`
	Notes         string `json:"notes"`
}

// # Output

// Channel describes how traders reach the shop.
type Channel struct {
	SiteName    string `json:"site_name"`
	Email       string `json:"email"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Link is a rendered message and the chat link that carries it.
type Link struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Link kinds, used as the metrics label.
const (
	KindInquiry = "inquiry"
	KindTrader  = "trader"
	KindProduct = "product"
)
