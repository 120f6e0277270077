package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/termstat/internal/core/domain"
)

func TestSettingsShow(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "statistics.min_token_length")
	assert.Contains(t, out, "cache.backend")
	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsShow_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "--json", "settings")
	require.NoError(t, err)

	var rows []settingRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 8)
	assert.Equal(t, "statistics.min_token_length", rows[0].Key)
	assert.Equal(t, "4", rows[0].Value)
}

func TestSettingsSetGet(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "settings", "set", "statistics.stop_words", "apple, pear")
	require.NoError(t, err)
	assert.Contains(t, out, "Set statistics.stop_words")

	out, err = execute(t, "settings", "get", "statistics.stop_words")
	require.NoError(t, err)
	assert.Equal(t, "apple,pear", strings.TrimSpace(out))

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "pear"}, settings.Statistics.StopWords)
}

func TestSettingsSet_CacheBackendNotice(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings", "set", "cache.backend", "bbolt")

	require.NoError(t, err)
	assert.Contains(t, out, "next run")
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "statistics.min_token_length", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "settings", "set", "no.such.key", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsGet_UnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "get", "no.such.key")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingRows_FollowSettings(t *testing.T) {
	s := domain.DefaultAppSettings()
	s.Warm.RatePerSecond = 2.5

	rows := settingRows(&s)

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	assert.Equal(t, "2.5", values["warm.rate_per_second"])
	assert.Equal(t, "", values["statistics.stop_words"])
	assert.Equal(t, string(domain.CacheBackendSQLite), values["cache.backend"])
}
