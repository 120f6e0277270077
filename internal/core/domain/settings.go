package domain

const unknownDescription = "Unknown"

// Statistics defaults.
const (
	// DefaultMinTokenLength is the minimum token length on collection paths.
	DefaultMinTokenLength = 4

	// DefaultTopN is the number of words kept in a document ranking.
	DefaultTopN = 50

	// DefaultMaxContentSize is the largest text, in characters, stored inline.
	DefaultMaxContentSize = 100_000

	// DefaultWarmWorkers is the warm-up worker pool size.
	DefaultWarmWorkers = 4
)

// CacheBackend selects where cached statistics vectors are kept.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendSQLite stores vectors on the document rows.
	CacheBackendSQLite CacheBackend = "sqlite"

	// CacheBackendBolt stores vectors in a bbolt key-value file.
	CacheBackendBolt CacheBackend = "bbolt"

	// CacheBackendMemory keeps vectors for the lifetime of the process.
	CacheBackendMemory CacheBackend = "memory"
)

// IsValid returns true if the cache backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendSQLite, CacheBackendBolt, CacheBackendMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if cached vectors survive a restart.
func (b CacheBackend) IsPersistent() bool {
	return b == CacheBackendSQLite || b == CacheBackendBolt
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendSQLite:
		return "SQLite (document rows)"
	case CacheBackendBolt:
		return "bbolt (key-value file)"
	case CacheBackendMemory:
		return "Memory (not persisted)"
	default:
		return unknownDescription
	}
}

// StatisticsSettings configures tokenization and ranking.
type StatisticsSettings struct {
	// MinTokenLength is the minimum token length in characters.
	MinTokenLength int `validate:"min=1,max=64"`

	// TopN truncates document rankings. Zero means unbounded.
	TopN int `validate:"min=0"`

	// CollectionTopN truncates collection rankings. Zero means unbounded.
	CollectionTopN int `validate:"min=0"`

	// StopWords are dropped by the tokenizer.
	StopWords []string `validate:"dive,required"`

	// MaxContentSize is the largest text, in characters, stored inline.
	MaxContentSize int `validate:"min=1"`
}

// CacheSettings configures the statistics cache.
type CacheSettings struct {
	// Backend is the cache implementation.
	Backend CacheBackend `validate:"required,oneof=sqlite bbolt memory"`
}

// WarmSettings configures cache warm-up.
type WarmSettings struct {
	// Workers is the number of parallel computations.
	Workers int `validate:"min=1,max=64"`

	// RatePerSecond paces computations. Zero disables pacing.
	RatePerSecond float64 `validate:"min=0"`
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Statistics StatisticsSettings
	Cache      CacheSettings
	Warm       WarmSettings
}

// DefaultStatisticsSettings returns the default statistics configuration.
func DefaultStatisticsSettings() StatisticsSettings {
	return StatisticsSettings{
		MinTokenLength: DefaultMinTokenLength,
		TopN:           DefaultTopN,
		CollectionTopN: 0,
		MaxContentSize: DefaultMaxContentSize,
	}
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Statistics: DefaultStatisticsSettings(),
		Cache: CacheSettings{
			Backend: CacheBackendSQLite,
		},
		Warm: WarmSettings{
			Workers: DefaultWarmWorkers,
		},
	}
}
