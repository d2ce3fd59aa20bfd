package skills

import "strings"

// stopwords excluded from keyword tokenization. Matching on these would
// inflate similarity for every document pair.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "is": true,
	"it": true, "of": true, "on": true, "or": true, "the": true, "to": true,
	"with": true, "you": true, "we": true, "our": true, "your": true,
	"will": true, "have": true, "has": true, "their": true, "this": true,
	"that": true, "must": true, "should": true, "years": true, "year": true,
	"experience": true, "strong": true, "ability": true, "working": true,
	"knowledge": true, "plus": true, "preferred": true, "required": true,
}

// Tokenize lowercases text and splits it into stemmed, stopword-free tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		switch r {
		case '+', '#', '.', '/', '-':
			// Keep intact inside tokens like "c++", "ci/cd", "node.js"
			return false
		}
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "./-")
		if f == "" || stopwords[f] {
			continue
		}
		tokens = append(tokens, Stem(f))
	}
	return tokens
}

// Stem applies a light suffix stemmer so that "testing"/"tested"/"tests"
// all compare equal. Deliberately conservative: short tokens and dictionary
// skill names pass through untouched.
func Stem(token string) string {
	if len(token) <= 4 {
		return token
	}
	if _, isSynonym := synonyms[token]; isSynonym {
		return token
	}

	for _, suffix := range []string{"ing", "ies", "ed", "es", "s"} {
		if strings.HasSuffix(token, suffix) && len(token)-len(suffix) >= 3 {
			stemmed := strings.TrimSuffix(token, suffix)
			if suffix == "ies" {
				stemmed += "y"
			}
			return stemmed
		}
	}
	return token
}

// TokenSet returns the tokens of text as a set for overlap computations.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		set[tok] = true
	}
	return set
}
