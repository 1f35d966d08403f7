package model

// Signals contains the measurable properties extracted from a single
// answer. Every score, explanation, and suggestion derives from these
// values; nothing downstream re-reads the raw text.
type Signals struct {
	WordCount         int      `json:"wordCount"`
	SentenceCount     int      `json:"sentenceCount"`
	UniqueRatio       float64  `json:"uniqueRatio"`
	MatchedKeywords   []string `json:"matchedKeywords"`
	TotalKeywords     int      `json:"totalKeywords"`
	KeywordMatchRatio float64  `json:"keywordMatchRatio"`
	FillerWordsFound  []string `json:"fillerWordsFound"`
	FillerCount       int      `json:"fillerCount"`
	AssertiveFound    []string `json:"assertiveFound"`
	HasExamples       bool     `json:"hasExamples"`
	StartsWithCapital bool     `json:"startsWithCapital"`
	AvgSentenceLen    int      `json:"avgSentenceLen"`
	RealWordRatio     float64  `json:"realWordRatio"`
	IsGibberish       bool     `json:"isGibberish"`
}

// SignalSummary is the subset of signals echoed back to the client on
// evaluation. The full set stays server-side with the stored result.
type SignalSummary struct {
	WordCount        int      `json:"wordCount"`
	SentenceCount    int      `json:"sentenceCount"`
	MatchedKeywords  []string `json:"matchedKeywords"`
	FillerWordsFound []string `json:"fillerWordsFound"`
	HasExamples      bool     `json:"hasExamples"`
	IsGibberish      bool     `json:"isGibberish"`
	RealWordRatio    float64  `json:"realWordRatio"`
}

// Summary returns the client-facing subset of the signals.
func (s Signals) Summary() SignalSummary {
	return SignalSummary{
		WordCount:        s.WordCount,
		SentenceCount:    s.SentenceCount,
		MatchedKeywords:  s.MatchedKeywords,
		FillerWordsFound: s.FillerWordsFound,
		HasExamples:      s.HasExamples,
		IsGibberish:      s.IsGibberish,
		RealWordRatio:    s.RealWordRatio,
	}
}
