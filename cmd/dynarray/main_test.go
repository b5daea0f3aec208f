/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/gorundebug/dynarray/collection"
	"github.com/gorundebug/dynarray/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runArgs(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunScript(t *testing.T) {
	c := collection.MakeCollection("1", "2", "4", "5")
	var out bytes.Buffer
	err := runScript(c, []string{"insert", "2", "3", "GET", "2", "exchange", "0", "4", "count", "print"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "3\n5\n[5, 2, 3, 4, 1]\n", out.String())
}

func TestRunScriptErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown command":    {"push", "1"},
		"missing argument":   {"insert", "1"},
		"invalid index":      {"remove", "one"},
		"index out of range": {"remove", "9"},
	}
	for name, script := range tests {
		t.Run(name, func(t *testing.T) {
			c := collection.MakeCollection("a")
			err := runScript(c, script, &bytes.Buffer{})
			assert.Error(t, err)
			assert.Equal(t, "[a]", c.String())
		})
	}

	c := collection.MakeCollection("a")
	err := runScript(c, []string{"set", "-1", "b"}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, collection.ErrIndexOutOfRange), err)
}

func TestRunScriptEmpty(t *testing.T) {
	c := collection.MakeCollection[string]()
	var out bytes.Buffer
	require.NoError(t, runScript(c, []string{"empty", "add", "a", "EMPTY", "count", "remove", "0", "empty"}, &out))
	assert.Equal(t, "true\nfalse\n1\ntrue\n", out.String())
}

func TestApplyConfig(t *testing.T) {
	c := collection.MakeCollection[string]()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	applyConfig(c, logger, &config.Config{
		Collection: config.CollectionConfig{InitialCapacity: 4, GrowthFactor: 3},
		Log:        config.LogConfig{Level: "debug"},
	})
	assert.Equal(t, collection.GrowthPolicy{InitialCapacity: 4, Factor: 3}, c.GrowthPolicy())
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	applyConfig(c, logger, &config.Config{
		Collection: config.CollectionConfig{InitialCapacity: 4, GrowthFactor: 3},
		Log:        config.LogConfig{Level: "loud"},
	})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestSplitItems(t *testing.T) {
	assert.Nil(t, splitItems(""))
	assert.Equal(t, []string{"a", "", "b"}, splitItems("a,,b"))
}

func TestRun(t *testing.T) {
	code, stdout, _ := runArgs(t, "", "add", "5", "add", "6")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "[5, 6]\n", stdout)
}

func TestRunItemsAndNegativeIndex(t *testing.T) {
	code, stdout, stderr := runArgs(t, "", "--items", "1,2,3", "remove", "-1")
	assert.Equal(t, exitError, code)
	assert.Equal(t, "[1, 2, 3]\n", stdout)
	assert.Contains(t, stderr, "index -1 out of range")
}

func TestRunAddRangeAndCapacity(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("collection:\n  initialCapacity: 2\n  growthFactor: 3\n"), 0o600))

	code, stdout, _ := runArgs(t, "", "--config", configPath, "addrange", "a,b,c", "capacity", "clear", "count")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6\n0\n[]\n", stdout)
}

func TestRunMetrics(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("metrics:\n  engine: prometheus\n  name: cli\n"), 0o600))

	code, _, stderr := runArgs(t, "", "--config", configPath, "--metrics", "addrange", "a,b")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, `dynarray_collection_count{collection="cli"} 2`)
}

func TestRunInvalidFlags(t *testing.T) {
	code, _, _ := runArgs(t, "", "--unknown")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runArgs(t, "", "--log-level", "loud")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runArgs(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitUsage, code)

	code, _, _ = runArgs(t, "", "--help")
	assert.Equal(t, exitOK, code)
}

func TestRunInteractive(t *testing.T) {
	stdin := "add a add b\n\ninsert 0 z\nremove 7\nexchange 0 2\n"
	code, stdout, _ := runArgs(t, stdin, "-i")
	assert.Equal(t, exitError, code)
	assert.Equal(t, "[a, b]\n[z, a, b]\n[z, a, b]\n[b, a, z]\n", stdout)
}

func TestRunInteractiveWatch(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("collection:\n  growthFactor: 3\n"), 0o600))

	code, stdout, _ := runArgs(t, "add a\nempty\n", "-i", "--watch", "--config", configPath)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "[a]\nfalse\n[a]\n", stdout)
}
