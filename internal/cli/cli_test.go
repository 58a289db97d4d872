package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ksuid"
	"github.com/dmitrymomot/ksuid/internal/cli"
)

const knownID = "0ujtsYcgvSTl8PAuAdqWYSMnLOv"

func defaultConfig(t *testing.T) cli.Config {
	t.Helper()

	cfg, err := cli.LoadConfigFrom(map[string]string{})
	require.NoError(t, err)
	return cfg
}

func execute(t *testing.T, cfg cli.Config, args []string, opts ...ksuid.Option) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(cfg, opts...)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg := defaultConfig(t)
		assert.Equal(t, cli.FormatString, cfg.Format)
		assert.Equal(t, cli.PrecisionSeconds, cfg.Precision)
		assert.Equal(t, 1, cfg.Count)
		assert.Equal(t, 4, cfg.Workers)
		assert.False(t, cfg.Sort)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Empty(t, cfg.SentryDSN)
		assert.Equal(t, "production", cfg.SentryEnvironment)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := cli.LoadConfigFrom(map[string]string{
			"KSUID_FORMAT":    "json",
			"KSUID_PRECISION": "ms",
			"KSUID_COUNT":     "7",
			"KSUID_SORT":      "true",
		})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "ms", cfg.Precision)
		assert.Equal(t, 7, cfg.Count)
		assert.True(t, cfg.Sort)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		t.Parallel()

		_, err := cli.LoadConfigFrom(map[string]string{"KSUID_COUNT": "many"})
		assert.ErrorIs(t, err, cli.ErrInvalidConfig)
	})

	t.Run("validate", func(t *testing.T) {
		t.Parallel()

		base := defaultConfig(t)
		tests := []struct {
			name   string
			mutate func(*cli.Config)
			want   error
		}{
			{name: "unknown format", mutate: func(c *cli.Config) { c.Format = "xml" }, want: cli.ErrUnknownFormat},
			{name: "template without text", mutate: func(c *cli.Config) { c.Format = cli.FormatTemplate }, want: cli.ErrTemplateRequired},
			{name: "unknown precision", mutate: func(c *cli.Config) { c.Precision = "ns" }, want: cli.ErrUnknownPrecision},
			{name: "zero count", mutate: func(c *cli.Config) { c.Count = 0 }, want: cli.ErrInvalidConfig},
			{name: "zero workers", mutate: func(c *cli.Config) { c.Workers = 0 }, want: cli.ErrInvalidConfig},
			{name: "bad log level", mutate: func(c *cli.Config) { c.LogLevel = "loud" }, want: cli.ErrInvalidConfig},
			{name: "bad log format", mutate: func(c *cli.Config) { c.LogFormat = "xml" }, want: cli.ErrInvalidConfig},
		}
		for _, tt := range tests {
			cfg := base
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want, tt.name)
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("prints one id by default", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), nil)
		require.NoError(t, err)

		got := lines(out)
		require.Len(t, got, 1)
		_, err = ksuid.Parse(got[0])
		assert.NoError(t, err)
	})

	t.Run("generates a sorted batch in parallel", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"-n", "250", "--workers", "8", "--sort"})
		require.NoError(t, err)

		got := lines(out)
		require.Len(t, got, 250)

		ids := make([]ksuid.KSUID, len(got))
		seen := make(map[string]struct{}, len(got))
		for i, s := range got {
			ids[i] = ksuid.MustParse(s)
			seen[s] = struct{}{}
		}
		assert.True(t, ksuid.IsSorted(ids))
		assert.Len(t, seen, 250)
	})

	t.Run("millisecond precision", func(t *testing.T) {
		t.Parallel()

		fixed := time.Unix(ksuid.Epoch, 0).Add(1500 * time.Millisecond)
		out, _, err := execute(t, defaultConfig(t), []string{"--ms", "-f", "timestamp"},
			ksuid.WithClock(func() time.Time { return fixed }))
		require.NoError(t, err)
		assert.Equal(t, "384\n", out)
	})

	t.Run("deterministic with injected sources", func(t *testing.T) {
		t.Parallel()

		fixed := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		out, _, err := execute(t, defaultConfig(t), nil,
			ksuid.WithClock(func() time.Time { return fixed }),
			ksuid.WithRandom(bytes.NewReader(make([]byte, 16))),
		)
		require.NoError(t, err)
		assert.Equal(t, "2JhXHQD2E52hpofiJN0EoD8pG88\n", out)
	})

	t.Run("random source failure is reported", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := execute(t, defaultConfig(t), nil, ksuid.WithRandom(bytes.NewReader(nil)))
		require.ErrorIs(t, err, ksuid.ErrRandomSource)
		assert.Contains(t, stderr, "ksuid command failed")
	})
}

func TestParseArgument(t *testing.T) {
	t.Parallel()

	t.Run("single id without flags", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{knownID})
		require.NoError(t, err)
		assert.Equal(t, knownID+"\n", out)
	})

	t.Run("several ids keep argument order", func(t *testing.T) {
		t.Parallel()

		maxID := ksuid.Max.String()
		out, _, err := execute(t, defaultConfig(t), []string{maxID, knownID})
		require.NoError(t, err)
		assert.Equal(t, []string{maxID, knownID}, lines(out))
	})

	t.Run("subcommand still resolves", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"vectors", "-n", "2"})
		require.NoError(t, err)
		assert.Len(t, lines(out), 2)
	})
}

func TestFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "string", want: knownID + "\n"},
		{format: "time", want: "2017-10-10T04:00:47Z\n"},
		{format: "timestamp", want: "107608047\n"},
		{format: "payload", want: "B5A1CD34B5F99D1154FB6853345C9735\n"},
		{format: "raw", want: "0669F7EFB5A1CD34B5F99D1154FB6853345C9735\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, defaultConfig(t), []string{"-f", tt.format, knownID})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("inspect", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"-f", "inspect", knownID, knownID})
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "REPRESENTATION:"))
		assert.Contains(t, out, "  String: "+knownID)
		assert.Contains(t, out, "     Raw: 0669F7EFB5A1CD34B5F99D1154FB6853345C9735")
		assert.Contains(t, out, "  Timestamp: 107608047")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"-f", "json", knownID})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, knownID, got["ksuid"])
		assert.Equal(t, "B5A1CD34B5F99D1154FB6853345C9735", got["payload"])
		assert.EqualValues(t, 107608047, got["timestamp"])
		assert.Equal(t, "2017-10-10T04:00:47Z", got["time"])
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"-f", "yaml", knownID, "000000000000000000000000000"})
		require.NoError(t, err)

		var got []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, knownID, got[0]["ksuid"])
		assert.Equal(t, 0, got[1]["timestamp"])
	})

	t.Run("template", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t),
			[]string{"-f", "template", "-t", "{{.Timestamp}}/{{.Payload}}", knownID})
		require.NoError(t, err)
		assert.Equal(t, "107608047/B5A1CD34B5F99D1154FB6853345C9735\n", out)
	})

	t.Run("bad template", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, defaultConfig(t), []string{"-f", "template", "-t", "{{.Nope", knownID})
		assert.ErrorIs(t, err, cli.ErrInvalidTemplate)
	})

	t.Run("millisecond parse", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"--precision", "ms", "-f", "timestamp", knownID})
		require.NoError(t, err)
		assert.Equal(t, "27547660213\n", out) // 0x0669F7EFB5
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, defaultConfig(t), []string{"not-a-ksuid"})
	require.ErrorIs(t, err, cli.ErrInvalidID)
	assert.ErrorIs(t, err, ksuid.ErrInvalidEncoding)

	_, _, err = execute(t, defaultConfig(t), []string{"1234567890"})
	assert.ErrorIs(t, err, ksuid.ErrInvalidByteLength)

	_, _, err = execute(t, defaultConfig(t), []string{"-f", "xml"})
	assert.ErrorIs(t, err, cli.ErrUnknownFormat)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, defaultConfig(t), []string{"-n", "3", "--log-level", "debug", "--log-format", "json"})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines(stderr)[0]), &entry))
	assert.Equal(t, "generated ids", entry["msg"])
	assert.Equal(t, "ksuid", entry["command"])
	assert.EqualValues(t, 3, entry["count"])

	runID, ok := entry["run_id"].(string)
	require.True(t, ok)
	_, err = ksuid.Parse(runID)
	assert.NoError(t, err)

	t.Run("bad sentry dsn keeps local logging", func(t *testing.T) {
		t.Parallel()

		cfg := defaultConfig(t)
		cfg.SentryDSN = "not-a-dsn"
		_, stderr, err := execute(t, cfg, []string{"--log-level", "info", "-n", "1"})
		require.NoError(t, err)
		assert.Contains(t, stderr, "failed to initialize sentry")
	})

	t.Run("off silences failures", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := execute(t, defaultConfig(t), []string{"--log-level", "off"}, ksuid.WithRandom(bytes.NewReader(nil)))
		require.ErrorIs(t, err, ksuid.ErrRandomSource)
		assert.NotContains(t, stderr, "ksuid command failed")
	})
}

func TestVectors(t *testing.T) {
	t.Parallel()

	t.Run("spans the timestamp range", func(t *testing.T) {
		t.Parallel()

		out, _, err := execute(t, defaultConfig(t), []string{"vectors", "-n", "50"})
		require.NoError(t, err)

		got := lines(out)
		require.Len(t, got, 50)

		var first, last struct {
			Timestamp int64  `json:"timestamp"`
			Payload   string `json:"payload"`
			KSUID     string `json:"ksuid"`
		}
		require.NoError(t, json.Unmarshal([]byte(got[0]), &first))
		require.NoError(t, json.Unmarshal([]byte(got[49]), &last))

		assert.EqualValues(t, ksuid.Epoch, first.Timestamp)
		assert.EqualValues(t, ksuid.Epoch+(1<<32-1), last.Timestamp)

		id := ksuid.MustParse(last.KSUID)
		assert.Equal(t, time.Unix(last.Timestamp, 0).UTC(), id.Time())
		assert.Len(t, last.Payload, 32)
	})

	t.Run("writes to a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "vectors.txt")
		out, _, err := execute(t, defaultConfig(t), []string{"vectors", "-n", "10", "-o", path})
		require.NoError(t, err)
		assert.Empty(t, out)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		n := 0
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			var v map[string]any
			require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
			n++
		}
		assert.Equal(t, 10, n)
	})

	t.Run("reports unwritable output", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, defaultConfig(t), []string{"vectors", "-n", "1", "-o", t.TempDir()})
		assert.ErrorIs(t, err, cli.ErrWriteOutput)
	})

	t.Run("rejects zero count", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, defaultConfig(t), []string{"vectors", "-n", "0"})
		assert.ErrorIs(t, err, cli.ErrInvalidConfig)
	})
}
