package utils

// Minimal server-side i18n for fixed keys. Domain messages are Korean-only
// (the service targets Korean residents); these keys cover the operational
// surface that monitoring tools hit.

var translations = map[string]map[string]string{
	"ko": {
		"health.ok": "정상",
	},
	"en": {
		"health.ok": "ok",
	},
}

// T returns the translated string for key in locale; falls back to Korean.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["ko"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
