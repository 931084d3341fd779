package types

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// FieldCategory selects which label table a type code is resolved against.
type FieldCategory string

// Field categories with typed, labeled entries.
const (
	CategoryPhone  FieldCategory = "phone"
	CategoryEmail  FieldCategory = "email"
	CategoryPostal FieldCategory = "postal"
)

// TypeCustom is the type code, shared by all categories, signaling that the
// display label is caller-supplied text rather than a predefined string.
const TypeCustom = 0

// Phone type codes.
const (
	PhoneTypeHome    = 1
	PhoneTypeMobile  = 2
	PhoneTypeWork    = 3
	PhoneTypeFaxWork = 4
	PhoneTypeFaxHome = 5
	PhoneTypePager   = 6
	PhoneTypeOther   = 7
	PhoneTypeMain    = 12
)

// Email type codes.
const (
	EmailTypeHome   = 1
	EmailTypeWork   = 2
	EmailTypeOther  = 3
	EmailTypeMobile = 4
)

// Postal address type codes.
const (
	PostalTypeHome  = 1
	PostalTypeWork  = 2
	PostalTypeOther = 3
)

// labelOther is the fallback for unknown or unmapped type codes.
const labelOther = "Other"

type labelTable map[FieldCategory]map[int]string

// fixedLabels is the locale-independent table used when localized label
// resolution is not requested.
var fixedLabels = labelTable{
	CategoryPhone: {
		PhoneTypeHome:    "Home",
		PhoneTypeMobile:  "Mobile",
		PhoneTypeWork:    "Work",
		PhoneTypeFaxWork: "Fax Work",
		PhoneTypeFaxHome: "Fax Home",
		PhoneTypePager:   "Pager",
		PhoneTypeOther:   "Other",
		PhoneTypeMain:    "Main",
	},
	CategoryEmail: {
		EmailTypeHome:   "Home",
		EmailTypeWork:   "Work",
		EmailTypeOther:  "Other",
		EmailTypeMobile: "Mobile",
	},
	CategoryPostal: {
		PostalTypeHome:  "Home",
		PostalTypeWork:  "Work",
		PostalTypeOther: "Other",
	},
}

// localizedLabels holds per-locale label tables, keyed by supported tag.
// English is the only built-in table; the matcher falls back to it for any
// unsupported locale, which keeps resolution deterministic everywhere.
var localizedLabels = map[language.Tag]labelTable{
	language.English: fixedLabels,
}

var (
	supportedLocales = []language.Tag{language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
	systemLocale     = detectSystemLocale()
)

// detectSystemLocale parses LC_ALL then LANG ("en_US.UTF-8" style) into a
// language tag. Unset or unparseable values fall back to English.
func detectSystemLocale() language.Tag {
	for _, env := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.English
}

// ResolveLabel maps a type code to its display label for the given
// category. The custom type code returns rawLabel verbatim. When localized
// is true the label is drawn from the best-matching locale table instead of
// the fixed one. Unknown type codes resolve to "Other". Pure function of
// its inputs and the process locale.
func ResolveLabel(category FieldCategory, typeCode int, rawLabel string, localized bool) string {
	if typeCode == TypeCustom {
		return rawLabel
	}
	table := fixedLabels
	if localized {
		_, idx, _ := localeMatcher.Match(systemLocale)
		table = localizedLabels[supportedLocales[idx]]
	}
	if label, ok := table[category][typeCode]; ok {
		return label
	}
	return labelOther
}
