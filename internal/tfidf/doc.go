// Package tfidf computes term-importance statistics for documents and
// collections of documents.
//
// The package is split along the pipeline it implements:
//
//   - Tokenizer: lowercased runs of word characters, length and stop-word filtered
//   - Frequency: raw per-term counts for one text or a concatenated corpus
//   - IDF: ln(N/df) over a corpus of documents, without smoothing
//   - Engine: ranked WordStatistic lists for a document or a whole collection
//
// Every call is a pure, deterministic recomputation over the texts it is
// given. The package holds no mutable state, performs no I/O and does not
// log; caching and invalidation belong to the caller.
package tfidf
