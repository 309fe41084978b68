package i18n

import (
	"context"
	"strings"
)

// Locale identifies a supported storefront language.
type Locale string

// Supported locales. German ships in two variants because Austrian pricing
// and legal copy differ from the German store.
const (
	LocaleEN   Locale = "en"
	LocaleDE   Locale = "de"
	LocaleDEAT Locale = "de-at"
	LocaleFR   Locale = "fr"
	LocaleES   Locale = "es"
)

// DefaultLocale is used when nothing is stored and negotiation fails.
const DefaultLocale = LocaleEN

var supported = map[Locale]bool{
	LocaleEN:   true,
	LocaleDE:   true,
	LocaleDEAT: true,
	LocaleFR:   true,
	LocaleES:   true,
}

// IsSupported reports whether raw names a supported locale.
func IsSupported(raw string) bool {
	return supported[Locale(strings.ToLower(raw))]
}

// Parse normalizes raw into a Locale, returning ok=false when unsupported.
func Parse(raw string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	return l, supported[l]
}

// Match negotiates a locale from an Accept-Language header value. Austrian
// German is matched exactly before falling back to the primary subtag; any
// other unsupported tag falls through to the default.
func Match(acceptLanguage string) Locale {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := part
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		if tag == "de-at" {
			return LocaleDEAT
		}
		primary := tag
		if i := strings.IndexByte(primary, '-'); i >= 0 {
			primary = primary[:i]
		}
		if l, ok := Parse(primary); ok {
			return l
		}
	}
	return DefaultLocale
}

// PreferenceStore persists a device's locale choice. The storefront keys
// preferences by an opaque device identifier carried in a cookie; the
// backing store is supplied by the host environment.
type PreferenceStore interface {
	Get(ctx context.Context, deviceID string) (string, error)
	Set(ctx context.Context, deviceID, locale string) error
}
