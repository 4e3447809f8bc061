package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-notebook/open-notebook-web/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "trace with caller expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				LogEnv:       "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := testLoggerConfig(t, tc.cfg)

			if !tc.shouldHaveOutPut {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)

			if !tc.outPutIsJSON {
				return
			}

			for _, line := range strings.Split(out, "\n") {
				if line == "" {
					continue
				}

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
				assert.Equal(t, "test", entry["service"])
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", AppName: "a", ServiceName: "s"})
	require.Error(t, err)

	err = logger.Init(logger.Log{LogLevel: "info", AppName: "a"})
	assert.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)

	err = logger.Init(logger.Log{LogLevel: "info", ServiceName: "s"})
	assert.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errOut, trace bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, WarnWriter: &warn, ErrorWriter: &errOut, TraceWriter: &trace}

	_, _ = lw.WriteLevel(zerolog.InfoLevel, []byte("i"))
	_, _ = lw.WriteLevel(zerolog.DebugLevel, []byte("d"))
	_, _ = lw.WriteLevel(zerolog.WarnLevel, []byte("w"))
	_, _ = lw.WriteLevel(zerolog.ErrorLevel, []byte("e"))
	_, _ = lw.WriteLevel(zerolog.FatalLevel, []byte("f"))
	_, _ = lw.WriteLevel(zerolog.TraceLevel, []byte("t"))

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, "id", info.String())
	assert.Equal(t, "w", warn.String())
	assert.Equal(t, "ef", errOut.String())
	assert.Equal(t, "t", trace.String())
}

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	rf := func(name string) logger.RotateFile {
		return logger.RotateFile{Name: name, MaxSize: 1, MaxBackups: 1, MaxAge: 1}
	}

	err := logger.Init(logger.Log{
		LogLevel:    "info",
		AppName:     "test",
		ServiceName: "test",
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Error:   rf("error.log"),
			Info:    rf("info.log"),
			Trace:   rf("trace.log"),
			Warn:    rf("warn.log"),
		},
	})
	require.NoError(t, err)

	log.Info().Msg("to the info file")
	log.Error().Err(errors.New("boom")).Msg("to the error file") //nolint:goerr113

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "to the info file")

	errLog, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errLog), "boom")
}

func testLoggerConfig(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	require.NoError(t, logger.Init(cfg))

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(errors.New("a test error")).Msg("this err message should be seen...") //nolint:goerr113

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	return <-outC
}
