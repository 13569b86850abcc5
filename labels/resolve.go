package labels

import "strings"

// Field resolution is a two-tier, first-match-wins scan over the row's
// columns in source order. There is no scoring or fuzzy matching: a column
// either satisfies a lookup or it does not, and an unmatched field is simply
// absent.

// resolveTyped returns the first non-empty cell whose normalized header
// contains at least one keyword from the type set and one from the content
// set (e.g. "Mailing City" for type {mail,current} + content {city}).
func resolveTyped(row Row, typeKeys, contentKeys []string) (string, bool) {
	for _, header := range row.Headers {
		key := normalizeHeader(header)
		if !containsAny(key, typeKeys) || !containsAny(key, contentKeys) {
			continue
		}
		if value := strings.TrimSpace(row.Value(header)); value != "" {
			return value, true
		}
	}
	return "", false
}

// resolveGeneric returns the first non-empty cell whose normalized header
// contains a content keyword and none of the exclude keywords. This lets a
// plain "City" column satisfy a property lookup without being confused by an
// explicit "Mailing City" column elsewhere in the row.
func resolveGeneric(row Row, contentKeys, excludeKeys []string) (string, bool) {
	for _, header := range row.Headers {
		key := normalizeHeader(header)
		if !containsAny(key, contentKeys) || containsAny(key, excludeKeys) {
			continue
		}
		if value := strings.TrimSpace(row.Value(header)); value != "" {
			return value, true
		}
	}
	return "", false
}

func containsAny(key string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}
