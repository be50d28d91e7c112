// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Storefront: Site identity and contact defaults.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "super3000"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// MaxRequestBodyBytes caps JSON request bodies.
	MaxRequestBodyBytes = 64 << 10
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Browse Sessions

const (
	// SessionSweepInterval is how often the in-memory session store drops expired entries.
	SessionSweepInterval = 5 * time.Minute
)

// # Storefront

const (
	SiteName  = "Super 3000"
	SiteEmail = "super3000_oil@gmail.com"

	// MinPhoneDigits is the fewest digits a contact phone number may carry.
	MinPhoneDigits = 8
)

// # Storefront Location

const (
	SiteAddressArabic   = "مركز نبروه - 6 شارع اكتوبر - بجوار مسجد ابوالغيط"
	SiteAddressEnglish  = "Nabaroh Center, 6 October St, near Abu Elghit Mosque"
	SiteLocalityArabic  = "نبروه"
	SiteLocalityEnglish = "Nabaroh"
	SiteRegionArabic    = "الدقهلية"
	SiteRegionEnglish   = "Dakahlia"

	// SiteCountry is the ISO 3166 country code, also the area served.
	SiteCountry = "EG"

	// Daily trading hours, local time.
	SiteOpens  = "10:00"
	SiteCloses = "20:00"
)

// SiteOpeningDays lists the trading days; the shop is closed on Friday.
var SiteOpeningDays = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentLang    = "Content-Language"
	HeaderRetryAfter     = "Retry-After"
)

// QueryLocale is the query parameter that overrides Accept-Language.
const QueryLocale = "locale"

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Key Taxonomy)

const (
	RedisPrefixBrowseSession = "browse:session:"
)
