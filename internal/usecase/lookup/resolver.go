package lookup

import (
	"strings"

	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/input"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
)

// ResolveCode runs the four-tier code lookup. Tiers are tried in order and the
// first one with a hit wins:
//
//  1. exact: first record whose code equals the input;
//  2. children: records whose code has the input as a proper prefix;
//  3. ancestor: records whose code starts with the input minus its last segment;
//  4. no match.
//
// Prefix checks are plain string prefixes without a segment boundary, so base
// "1.2" also matches "1.25".
func ResolveCode(code string, cat catalog.Catalog) result.Result {
	code = input.Trim(code)

	if rec, ok := cat.Find(func(r catalog.Record) bool { return r.Code() == code }); ok {
		return result.Exact(rec)
	}

	children := cat.Filter(func(r catalog.Record) bool {
		return r.Code() != code && strings.HasPrefix(r.Code(), code)
	})
	if len(children) > 0 {
		return result.Partial(code, children)
	}

	if base, ok := AncestorCode(code); ok {
		similar := cat.Filter(func(r catalog.Record) bool {
			return strings.HasPrefix(r.Code(), base)
		})
		if len(similar) > 0 {
			return result.Similar(code, base, similar)
		}
	}

	return result.NoCode(code)
}

// AncestorCode drops the last dot-separated segment of code.
// Single-segment codes have no ancestor.
func AncestorCode(code string) (string, bool) {
	i := strings.LastIndexByte(code, '.')
	if i < 0 {
		return "", false
	}
	return code[:i], true
}
