// Package rubric holds the fixed configuration that parameterizes
// scoring: the question bank, the phrase lists, and the ordered score
// band tables. Nothing in here contains scoring logic; the tables can
// evolve without touching the engine.
package rubric

import (
	"regexp"
	"strings"
)

// FillerPattern is a hedging phrase with its compiled whole-word
// matcher. A filler occurring inside a longer word does not match.
type FillerPattern struct {
	Phrase  string
	pattern *regexp.Regexp
}

// Count returns the number of whole-word occurrences of the filler
// phrase in the text, case-insensitive.
func (f FillerPattern) Count(text string) int {
	return len(f.pattern.FindAllStringIndex(text, -1))
}

// Rubric bundles the phrase tables used by the signal extractor.
type Rubric struct {
	Fillers   []FillerPattern
	Assertive []string
	Examples  []string
}

// New compiles a rubric from raw phrase lists. Detection order follows
// list order.
func New(fillers, assertive, examples []string) *Rubric {
	r := &Rubric{
		Assertive: assertive,
		Examples:  examples,
	}
	for _, phrase := range fillers {
		r.Fillers = append(r.Fillers, FillerPattern{
			Phrase:  phrase,
			pattern: compileWholeWord(phrase),
		})
	}
	return r
}

// Default returns the built-in rubric.
func Default() *Rubric {
	return New(fillerPhrases, assertivePhrases, examplePhrases)
}

func compileWholeWord(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(phrase)) + `\b`)
}

// Hedging phrases that lower the confidence score.
var fillerPhrases = []string{
	"maybe", "perhaps", "i think", "i guess", "not sure", "possibly",
	"kind of", "sort of", "basically", "um", "uh", "probably",
	"i don't know", "might", "could be", "not really", "unsure",
	"i suppose", "honestly", "actually",
}

// Assertive phrases that raise the confidence score.
var assertivePhrases = []string{
	"i am confident", "i believe", "i know", "i have", "i can",
	"i will", "i achieved", "i successfully", "definitely",
	"certainly", "clearly",
}

// Phrases indicating the answer cites a concrete example.
var examplePhrases = []string{
	"for example", "for instance", "such as", "specifically",
	"in particular", "like when", "one time",
}
