// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Document metadata persistence
//   - CollectionStore: Collection and membership persistence
//   - StatisticsCache: Cached per-document statistics vectors
//   - TextSource: Resolves the text of a document
//   - Normaliser: Extracts plain text from raw file content
//   - NormaliserRegistry: Selects appropriate normaliser
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MetricsStore: Records statistics runs. Without it, no metrics are kept.
//   - FileWatcher: Watches document files for changes. Only used by the watch command.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
