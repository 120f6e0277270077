package tfidf

import "math"

// InverseDocumentFrequencies returns the sorted union vocabulary of corpus
// and ln(N/df) for each term, aligned by index. N is the number of
// documents and df the number of documents containing the term.
// No smoothing is applied: a term present in every document scores 0.
func (e *Engine) InverseDocumentFrequencies(corpus []string) (vocabulary []string, idf []float64) {
	index := e.idfIndex(corpus)
	vocabulary = sortedTerms(index)
	idf = make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		idf[i] = index[term]
	}
	return vocabulary, idf
}

// idfIndex maps every corpus term to its IDF.
func (e *Engine) idfIndex(corpus []string) map[string]float64 {
	df := e.documentFrequencies(corpus)
	n := float64(len(corpus))

	index := make(map[string]float64, len(df))
	for term, count := range df {
		index[term] = idfScore(n, count)
	}
	return index
}

// documentFrequencies counts, for every term, the documents containing it.
func (e *Engine) documentFrequencies(corpus []string) map[string]int {
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range e.tokenizer.Tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	return df
}

// idfScore is ln(n/df), or 0 for a term absent from every document.
func idfScore(n float64, df int) float64 {
	if df <= 0 {
		return 0
	}
	return math.Log(n / float64(df))
}
