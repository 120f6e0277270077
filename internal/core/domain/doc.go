// Package domain defines the core business entities for termstat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A text document and its cached statistics vector
//   - Collection: A set of documents forming an IDF corpus
//   - WordStatistic: One ranked word with its TF, IDF and TF-IDF
//   - StatisticsSettings: Tokenizer and ranking configuration
//   - MetricRun: A record of one statistics computation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
