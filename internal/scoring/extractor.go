// Package scoring implements the heuristic answer evaluation engine:
// signal extraction, the four dimension scorers, explanation and
// suggestion generation, and cross-answer aggregation. Everything here
// is a pure function of its inputs; the rubric supplies all constants.
package scoring

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"selectra/internal/model"
	"selectra/internal/rubric"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Gibberish thresholds. An answer is unscorable when few of its tokens
// look like real words, or when it is short, keyword-free, and mostly
// non-words.
const (
	gibberishRealWordFloor  = 0.4
	gibberishShortWordFloor = 0.6
	gibberishShortWordCount = 15
)

// Extractor derives measurable signals from raw answer text. It is
// deterministic, side-effect free, and never fails; blank input must be
// rejected by the caller before invocation.
type Extractor struct {
	rubric *rubric.Rubric
}

// NewExtractor creates an extractor bound to a rubric.
func NewExtractor(r *rubric.Rubric) *Extractor {
	return &Extractor{rubric: r}
}

// Extract computes the full signal set for an answer against a question.
func (e *Extractor) Extract(answer string, q model.QuestionSpec) model.Signals {
	lower := strings.ToLower(answer)
	words := strings.Fields(answer)
	wordCount := len(words)

	sentenceCount := countSentences(answer)

	unique := make(map[string]struct{}, wordCount)
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}
	uniqueRatio := 0.0
	if wordCount > 0 {
		uniqueRatio = round2(float64(len(unique)) / float64(wordCount))
	}

	matched := []string{}
	for _, kw := range q.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	keywordMatchRatio := 0.0
	if len(q.Keywords) > 0 {
		keywordMatchRatio = round2(float64(len(matched)) / float64(len(q.Keywords)))
	}

	fillersFound := []string{}
	fillerCount := 0
	for _, f := range e.rubric.Fillers {
		if n := f.Count(lower); n > 0 {
			fillerCount += n
			fillersFound = append(fillersFound, f.Phrase)
		}
	}

	assertiveFound := []string{}
	for _, phrase := range e.rubric.Assertive {
		if strings.Contains(lower, phrase) {
			assertiveFound = append(assertiveFound, phrase)
		}
	}

	hasExamples := false
	for _, phrase := range e.rubric.Examples {
		if strings.Contains(lower, phrase) {
			hasExamples = true
			break
		}
	}

	avgSentenceLen := wordCount
	if sentenceCount > 0 {
		avgSentenceLen = int(math.Round(float64(wordCount) / float64(sentenceCount)))
	}

	realWords := 0
	for _, w := range words {
		if isRealWord(w) {
			realWords++
		}
	}
	realWordRatio := 0.0
	if wordCount > 0 {
		realWordRatio = round2(float64(realWords) / float64(wordCount))
	}

	isGibberish := realWordRatio < gibberishRealWordFloor ||
		(wordCount > 0 && keywordMatchRatio == 0 &&
			realWordRatio < gibberishShortWordFloor && wordCount < gibberishShortWordCount)

	return model.Signals{
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		UniqueRatio:       uniqueRatio,
		MatchedKeywords:   matched,
		TotalKeywords:     len(q.Keywords),
		KeywordMatchRatio: keywordMatchRatio,
		FillerWordsFound:  fillersFound,
		FillerCount:       fillerCount,
		AssertiveFound:    assertiveFound,
		HasExamples:       hasExamples,
		StartsWithCapital: startsWithCapital(answer),
		AvgSentenceLen:    avgSentenceLen,
		RealWordRatio:     realWordRatio,
		IsGibberish:       isGibberish,
	}
}

// countSentences splits on runs of sentence terminators and discards
// empty fragments.
func countSentences(text string) int {
	n := 0
	for _, frag := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(frag) != "" {
			n++
		}
	}
	return n
}

// isRealWord reports whether a token looks like an English word: at
// least 3 characters with at least one vowel.
func isRealWord(w string) bool {
	return len(w) >= 3 && strings.ContainsAny(w, "aeiouAEIOU")
}

// startsWithCapital reports whether the first character equals its own
// uppercase form. Non-letter first characters trivially satisfy this.
func startsWithCapital(text string) bool {
	for _, r := range text {
		return r == unicode.ToUpper(r)
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
