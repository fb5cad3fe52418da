package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder configured for PostgreSQL
// ($N placeholders). Repos use it for the dynamic listing and search
// queries; fixed-shape queries stay as plain SQL consts.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE/ILIKE metacharacters in a user-supplied
// search term so it matches literally inside a pattern.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
