package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout, stderr and
// the command error. A missing env file keeps stray .env files out.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	t.Run("reports each record and fails when any is rejected", func(t *testing.T) {
		out, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", "testdata/records.yaml", "--lang", "en")
		require.ErrorIs(t, err, errRecordsRejected)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, []string{
			"#1 accepted",
			"#2 rejected: shares must be at least 0, got -10",
			"#3 accepted",
			"#4 rejected: name must have fewer than 8 elements, got 11",
			"2 of 4 records rejected",
		}, lines)
	})

	t.Run("succeeds when every record is accepted", func(t *testing.T) {
		out, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", "testdata/accepted.yaml", "--lang", "en")
		require.NoError(t, err)
		assert.Contains(t, out, "all 2 records accepted")
	})

	t.Run("translates the report", func(t *testing.T) {
		out, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", "testdata/records.yaml", "--lang", "es-MX")
		require.ErrorIs(t, err, errRecordsRejected)
		assert.Contains(t, out, "#2 rechazado: shares debe ser al menos 0, se recibió -10")
		assert.Contains(t, out, "2 de 4 registros rechazados")
	})

	t.Run("takes the language from the environment", func(t *testing.T) {
		t.Setenv("RECORDCHECK_LANG", "es")

		out, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", "testdata/accepted.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "#1 aceptado")
	})

	t.Run("writes metrics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "check.prom")

		_, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", "testdata/records.yaml", "--metrics-out", path)
		require.ErrorIs(t, err, errRecordsRejected)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		text := string(data)
		assert.Contains(t, text, `recordkit_field_writes_total{field="name",outcome="committed",schema="stock"} 2`)
		assert.Contains(t, text, `recordkit_field_writes_total{field="shares",outcome="rejected",schema="stock"} 1`)
		assert.Contains(t, text, `recordkit_rejections_total{kind="below_minimum",schema="stock"} 1`)
		assert.Contains(t, text, `recordkit_rejections_total{kind="size_exceeded",schema="stock"} 1`)
	})

	t.Run("logs rejections at debug level", func(t *testing.T) {
		_, logs, err := run(t, "--log-level", "debug", "check", "-s", "testdata/stock.yaml", "-r", "testdata/records.yaml")
		require.ErrorIs(t, err, errRecordsRejected)
		assert.Contains(t, logs, "field rejected")
		assert.Contains(t, logs, "check finished")
	})

	t.Run("requires the schema flag", func(t *testing.T) {
		_, _, err := run(t, "check", "-r", "testdata/records.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema")
	})

	t.Run("rejects records that are not mappings or sequences", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- 42\n"), 0o600))

		out, _, err := run(t, "check", "-s", "testdata/stock.yaml", "-r", path, "--lang", "en")
		require.ErrorIs(t, err, errRecordsRejected)
		assert.Contains(t, out, "record must be a mapping or a sequence, got int")
	})

	t.Run("fails on a missing schema file", func(t *testing.T) {
		_, _, err := run(t, "check", "-s", "testdata/nope.yaml", "-r", "testdata/records.yaml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, errRecordsRejected)
	})
}

func TestSettings(t *testing.T) {
	t.Run("reads the env file", func(t *testing.T) {
		t.Setenv("RECORDCHECK_LANG", "")
		require.NoError(t, os.Unsetenv("RECORDCHECK_LANG"))

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("RECORDCHECK_LANG=es\n"), 0o600))

		var stdout bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--env-file", envFile, "--no-color", "check", "-s", "testdata/stock.yaml", "-r", "testdata/accepted.yaml"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, stdout.String(), "los 2 registros fueron aceptados")
	})

	t.Run("rejects an unknown log format", func(t *testing.T) {
		t.Setenv("RECORDCHECK_LOG_FORMAT", "xml")

		_, _, err := run(t, "fields", "-s", "testdata/stock.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "loud", "fields", "-s", "testdata/stock.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestExport(t *testing.T) {
	out, _, err := run(t, "export", "-s", "testdata/stock.yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "stock", doc["title"])
	assert.Equal(t, []any{"name", "shares", "price"}, doc["required"])

	props := doc["properties"].(map[string]any)
	name := props["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, float64(7), name["maxLength"])

	price := props["price"].(map[string]any)
	assert.Len(t, price["anyOf"], 2)
}

func TestFields(t *testing.T) {
	out, _, err := run(t, "fields", "-s", "testdata/stock.yaml")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"name    type(string) -> size(<8)",
		"shares  type(int) -> min(0)",
		"price   nullable(type(float) -> min(0))",
	}, "\n")+"\n", out)
}
