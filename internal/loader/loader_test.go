package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arkk.json", `{
		"20240102": [
			{"hour": 10, "minute": 0, "open": 50.5, "close": 51.0},
			{"hour": 9, "minute": 30, "open": 50.0, "close": 50.5}
		],
		"20240103": []
	}`)

	data, err := Load(dir, "arkk")
	require.NoError(t, err)

	require.Len(t, data, 2)
	require.Len(t, data["20240102"], 2)
	assert.Equal(t, 10, data["20240102"][0].Hour)
	assert.Equal(t, 50.5, data["20240102"][0].Open)
	assert.Empty(t, data["20240103"])
}

func TestLoad_IgnoresExtraFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arkk.json", `{
		"20240102": [
			{"hour": 9, "minute": 30, "open": 50.0, "close": 50.5, "high": 51.0, "low": 49.0, "volume": 12345}
		]
	}`)

	data, err := Load(dir, "arkk")
	require.NoError(t, err)
	assert.Len(t, data["20240102"], 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "arkk")
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arkk.json", `{"20240102": [`)

	_, err := Load(dir, "arkk")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoad_RecordMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arkk.json", `{
		"20240102": [{"hour": 9, "minute": 30, "open": 50.0}]
	}`)

	_, err := Load(dir, "arkk")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoad_RejectsOutOfRangeRecord(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "bad_hour.json", `{"20240102": [{"hour": 24, "minute": 0, "open": 50.0, "close": 50.0}]}`)
	_, err := Load(dir, "bad_hour")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	writeFile(t, dir, "bad_price.json", `{"20240102": [{"hour": 9, "minute": 30, "open": -1.0, "close": 50.0}]}`)
	_, err = Load(dir, "bad_price")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestLoad_HourZeroIsValid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "arkk.json", `{"20240102": [{"hour": 0, "minute": 0, "open": 50.0, "close": 50.0}]}`)

	data, err := Load(dir, "arkk")
	require.NoError(t, err)
	assert.Equal(t, 0, data["20240102"][0].Hour)
}
