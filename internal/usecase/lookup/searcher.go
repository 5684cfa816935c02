package lookup

import (
	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/input"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	"github.com/kailas-cloud/catalookup/internal/domain/query/token"
)

// SearchText matches keywords against official and elaborated names.
// A record matches if any keyword is a substring of its names (OR semantics).
// Queries without a keyword of token.MinLength characters are vague.
func SearchText(query string, cat catalog.Catalog) result.Result {
	query = input.Trim(query)

	tokens := token.Tokenize(query)
	if len(tokens) == 0 {
		return result.Vague(query)
	}

	matches := cat.Filter(func(r catalog.Record) bool {
		return token.MatchesAny(r.SearchText(), tokens)
	})
	if len(matches) == 0 {
		return result.NoText(query)
	}
	return result.Text(query, matches)
}
