package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/termstat/internal/core/domain"
	"github.com/custodia-labs/termstat/internal/core/ports/driven"
	"github.com/custodia-labs/termstat/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMinTokenLength = "statistics.min_token_length"
	keyTopN           = "statistics.top_n"
	keyCollectionTopN = "statistics.collection_top_n"
	keyStopWords      = "statistics.stop_words"
	keyMaxContentSize = "statistics.max_content_size"
	keyCacheBackend   = "cache.backend"
	keyWarmWorkers    = "warm.workers"
	keyWarmRate       = "warm.rate_per_second"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(),
	}
}

// Get retrieves current application settings.
// Missing or mistyped values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Statistics: domain.StatisticsSettings{
			MinTokenLength: s.getInt(keyMinTokenLength, defaults.Statistics.MinTokenLength),
			TopN:           s.getInt(keyTopN, defaults.Statistics.TopN),
			CollectionTopN: s.getInt(keyCollectionTopN, defaults.Statistics.CollectionTopN),
			StopWords:      s.configStore.GetStringSlice(keyStopWords),
			MaxContentSize: s.getInt(keyMaxContentSize, defaults.Statistics.MaxContentSize),
		},
		Cache: domain.CacheSettings{
			Backend: s.getCacheBackend(defaults.Cache.Backend),
		},
		Warm: domain.WarmSettings{
			Workers:       s.getInt(keyWarmWorkers, defaults.Warm.Workers),
			RatePerSecond: s.getFloat(keyWarmRate, defaults.Warm.RatePerSecond),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := s.check(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyMinTokenLength, settings.Statistics.MinTokenLength},
		{keyTopN, settings.Statistics.TopN},
		{keyCollectionTopN, settings.Statistics.CollectionTopN},
		{keyStopWords, settings.Statistics.StopWords},
		{keyMaxContentSize, settings.Statistics.MaxContentSize},
		{keyCacheBackend, settings.Cache.Backend.String()},
		{keyWarmWorkers, settings.Warm.Workers},
		{keyWarmRate, settings.Warm.RatePerSecond},
	}
	for _, v := range values {
		if err := s.store(v.key, v.value); err != nil {
			return err
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and
// persists the single key. Stop words are given comma-separated.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case keyMinTokenLength:
		stored, err = parseInt(key, value, &settings.Statistics.MinTokenLength)
	case keyTopN:
		stored, err = parseInt(key, value, &settings.Statistics.TopN)
	case keyCollectionTopN:
		stored, err = parseInt(key, value, &settings.Statistics.CollectionTopN)
	case keyMaxContentSize:
		stored, err = parseInt(key, value, &settings.Statistics.MaxContentSize)
	case keyWarmWorkers:
		stored, err = parseInt(key, value, &settings.Warm.Workers)
	case keyStopWords:
		words := splitList(value)
		settings.Statistics.StopWords = words
		stored = words
	case keyCacheBackend:
		backend := domain.CacheBackend(strings.ToLower(strings.TrimSpace(value)))
		settings.Cache.Backend = backend
		stored = backend.String()
	case keyWarmRate:
		rate, perr := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if perr != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Warm.RatePerSecond = rate
		stored = rate
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return err
	}

	if err := s.check(settings); err != nil {
		return err
	}
	return s.store(key, stored)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.check(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// store persists one key. An empty list removes the key instead.
func (s *SettingsService) store(key string, value any) error {
	var err error
	if words, ok := value.([]string); ok && len(words) == 0 {
		err = s.configStore.Delete(key)
	} else {
		err = s.configStore.Set(key, value)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// check runs struct validation and flattens the failures into one error.
func (s *SettingsService) check(settings *domain.AppSettings) error {
	err := s.validate.Struct(settings)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate settings: %w", err)
	}
	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "AppSettings.")
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Helper methods for reading config with defaults.
// Zero is a meaningful value for several settings, so presence is checked
// rather than comparing against the zero value.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getCacheBackend(defaultVal domain.CacheBackend) domain.CacheBackend {
	val := s.configStore.GetString(keyCacheBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.CacheBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func parseInt(key, value string, target *int) (any, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	*target = n
	return n, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
