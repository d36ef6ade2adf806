package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		_ = os.Chdir(wd)
	})
}

func TestSetupLogging_Disabled(t *testing.T) {
	inTempDir(t)

	f := setupLogging(false)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log dir without --debug")
}

func TestSetupLogging_Debug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("coaster test line")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "coaster test line")

	w := log.Writer()
	assert.NotEqual(t, os.Stdout, w)
	assert.NotEqual(t, os.Stderr, w)
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	inTempDir(t)

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasSuffix(e.Name(), ".log") {
			rotated = append(rotated, e.Name())
		}
	}
	require.Len(t, rotated, 1)

	old, err := os.Stat(filepath.Join(logDir, rotated[0]))
	require.NoError(t, err)
	assert.EqualValues(t, maxLogSize+1, old.Size())

	cur, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, cur.Size(), int64(maxLogSize))
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	inTempDir(t)

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, []byte("earlier run\n"), 0644))

	f := setupLogging(true)
	require.NotNil(t, f)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "earlier run\n"))
}
