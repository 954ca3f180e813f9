// Package tokenizer turns raw query strings into normalized search tokens.
package tokenizer

import "strings"

// Tokenize converts a query string into a deduplicated slice of lowercase
// tokens. The input is split on single space characters only; empty tokens
// produced by leading, trailing or consecutive spaces are dropped, so an
// empty or all-space query yields an empty slice.
//
// Deduplication keeps the first occurrence of each token, so downstream
// processing is deterministic even though set semantics apply.
func Tokenize(query string) []string {
	split := strings.Split(query, " ")

	tokens := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	seen := make(map[string]struct{}, len(split))
	for _, s := range split {
		if s == "" {
			continue
		}
		token := strings.ToLower(s)
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
