package classifier

import "strings"

// stopwords are dropped before training and inference.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "are": true, "was": true, "you": true,
	"your": true, "have": true, "has": true, "not": true, "but": true,
	"all": true, "can": true, "will": true, "one": true, "out": true,
	"www": true, "http": true, "https": true, "com": true, "org": true,
	"net": true,
}

// Tokenize lowercases the input, splits on anything that is not a
// letter, and drops stopwords and tokens shorter than three runes.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
