package config

// Locales supported by the landing site.
var Locales = []string{"en", "es"}

// ScrollOffset is the fixed pixel offset the navbar applies when deciding
// which landing section is in view (the navbar height).
const ScrollOffset = 100

// landing section ids, in page order, per locale
var landingSections = map[string][]string{
	"en": {"hero", "about", "showcase", "contact"},
	"es": {"hero", "about", "showcase", "contact"},
}

// LandingSections returns the ordered section ids for a locale. Unknown
// locales fall back to the default locale's list.
func LandingSections(locale string) []string {
	if s, ok := landingSections[locale]; ok {
		return s
	}
	return landingSections["en"]
}

// DefaultLocale returns the configured default locale, "en" before
// LoadAppConfig has run.
func DefaultLocale() string {
	if AppConfig != nil && AppConfig.DefaultLocale != "" {
		return AppConfig.DefaultLocale
	}
	return "en"
}

// IsLocale reports whether the given locale is served.
func IsLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
