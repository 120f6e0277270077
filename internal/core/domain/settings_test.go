package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  CacheBackend
		expected bool
	}{
		{name: "sqlite is valid", backend: CacheBackendSQLite, expected: true},
		{name: "bbolt is valid", backend: CacheBackendBolt, expected: true},
		{name: "memory is valid", backend: CacheBackendMemory, expected: true},
		{name: "empty string is invalid", backend: CacheBackend(""), expected: false},
		{name: "unknown backend is invalid", backend: CacheBackend("redis"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestCacheBackend_IsPersistent(t *testing.T) {
	assert.True(t, CacheBackendSQLite.IsPersistent())
	assert.True(t, CacheBackendBolt.IsPersistent())
	assert.False(t, CacheBackendMemory.IsPersistent())
}

func TestCacheBackend_Description(t *testing.T) {
	assert.Equal(t, "SQLite (document rows)", CacheBackendSQLite.Description())
	assert.Equal(t, "Memory (not persisted)", CacheBackendMemory.Description())
	assert.Equal(t, "Unknown", CacheBackend("other").Description())
}

func TestDefaultStatisticsSettings(t *testing.T) {
	s := DefaultStatisticsSettings()

	assert.Equal(t, 4, s.MinTokenLength)
	assert.Equal(t, 50, s.TopN)
	assert.Equal(t, 0, s.CollectionTopN)
	assert.Empty(t, s.StopWords)
	assert.Equal(t, DefaultMaxContentSize, s.MaxContentSize)
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, CacheBackendSQLite, s.Cache.Backend)
	assert.Equal(t, DefaultWarmWorkers, s.Warm.Workers)
	assert.Zero(t, s.Warm.RatePerSecond)
	assert.Equal(t, DefaultStatisticsSettings(), s.Statistics)
}
