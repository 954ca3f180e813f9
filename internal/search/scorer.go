package search

import "strings"

// Score computes the similarity between a matched field value and a search
// token. Every case-insensitive occurrence of the token is removed from the
// field value; the score is one minus the fraction of the field value left
// over:
//
//	score = 1 - len(remainder) / len(fieldValue)
//
// Lengths are measured in runes so that umlauts and ß do not skew the ratio.
// A token equal to the whole field value scores 1.0; a token that does not
// occur at all scores 0.0. Scores are never negative: removal cannot
// lengthen the string.
//
// An empty field value would divide by zero; it scores 0.0 instead, so
// degenerate rows rank last rather than producing NaN. An empty token
// removes nothing and likewise scores 0.0.
func Score(fieldValue, token string) float64 {
	fieldLower := strings.ToLower(fieldValue)
	fieldLen := len([]rune(fieldLower))
	if fieldLen == 0 {
		return 0.0
	}
	if token == "" {
		return 0.0
	}

	remainder := strings.ReplaceAll(fieldLower, strings.ToLower(token), "")
	mismatchLen := len([]rune(remainder))

	return 1.0 - float64(mismatchLen)/float64(fieldLen)
}
