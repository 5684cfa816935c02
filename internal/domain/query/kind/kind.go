package kind

// Kind tags a query result variant.
type Kind string

// Result kinds.
const (
	ExactMatch     Kind = "exact_match"
	PartialMatches Kind = "partial_matches"
	SimilarCodes   Kind = "similar_codes"
	TextMatches    Kind = "text_matches"
	NoCodeResults  Kind = "no_code_results"
	NoTextResults  Kind = "no_text_results"
	// EmptyQuery means nothing was typed at all.
	EmptyQuery Kind = "empty_query"
	// VagueQuery means free text had no token long enough to search by.
	VagueQuery Kind = "vague_query"
)

// IsCodeTier reports whether the variant comes from code resolution.
func (k Kind) IsCodeTier() bool {
	return k == ExactMatch || k == PartialMatches || k == SimilarCodes || k == NoCodeResults
}
