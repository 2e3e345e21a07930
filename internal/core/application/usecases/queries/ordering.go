package queries

import "strings"

// orderBy translates an ordering parameter ("price", "-date") into an ORDER BY clause
// over the whitelisted columns. Unknown fields fall back to fallback so that a bad
// parameter is a no-op. Ties are broken by id.
func orderBy(raw string, columns map[string]string, fallback string) string {
	field, desc := strings.TrimSpace(raw), false
	if strings.HasPrefix(field, "-") {
		field, desc = field[1:], true
	}

	column, ok := columns[field]
	if !ok {
		return fallback
	}

	clause := column + " ASC"
	if desc {
		clause = column + " DESC"
	}
	if field != "id" {
		clause += ", id ASC"
	}
	return clause
}
