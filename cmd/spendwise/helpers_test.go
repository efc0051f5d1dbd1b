package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	defer viper.Reset()

	viper.Set("logging.level", "debug")
	viper.Set("logging.format", "json")
	require.NoError(t, setupLogging())

	viper.Set("logging.level", "loud")
	assert.Error(t, setupLogging())
}

func TestSheetsConfigFromViper(t *testing.T) {
	defer viper.Reset()

	viper.Set("sheets.service_account_path", "/tmp/key.json")
	viper.Set("sheets.spreadsheet_name", "My Expenses")

	cfg := sheetsConfigFromViper()
	assert.Equal(t, "/tmp/key.json", cfg.ServiceAccountPath)
	assert.Equal(t, "My Expenses", cfg.SpreadsheetName)
	assert.Equal(t, 1000, cfg.BatchSize, "defaults carry through")
	assert.NoError(t, cfg.Validate())
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}
