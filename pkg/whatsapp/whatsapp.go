// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package whatsapp builds click-to-chat links (https://wa.me/...).

A link carries the recipient number as bare digits and, optionally, a
pre-filled message in the text query parameter.
*/
package whatsapp

import (
	"net/url"
	"strings"
)

// BaseURL is the click-to-chat endpoint.
const BaseURL = "https://wa.me/"

// NormalizeNumber strips every non-digit from number ("+20 10-XXX" → "2010").
func NormalizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// EncodeMessage percent-encodes message for the text parameter. Spaces are
// encoded as %20 because some clients render a literal "+".
func EncodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// BuildLink returns the chat link for number with message pre-filled. An
// empty message yields a bare chat link.
func BuildLink(number, message string) string {
	link := BaseURL + NormalizeNumber(number)
	if message == "" {
		return link
	}
	return link + "?text=" + EncodeMessage(message)
}
