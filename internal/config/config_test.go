package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for i := 0; i < a.Value.NumField(); i++ {
			f := a.Type.Field(i)
			isNullable := f.Tag.Get("test") == "nullable"
			fields = append(fields, visit(variable{f.Type, a.Value.Field(i)}, name+"."+f.Name, isNullable)...)
		}

		return fields
	}

	if a.Value.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("no variables", func(t *testing.T) {
		cfg, err := FromEnv("HUFF", lookupFrom(nil))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := FromEnv("HUFF", lookupFrom(map[string]string{
			"HUFF_ADDR":             "127.0.0.1:9000",
			"HUFF_MAX_BODY_SIZE":    "1024",
			"HUFF_READ_TIMEOUT":     "2s",
			"HUFF_WRITE_TIMEOUT":    "3s",
			"HUFF_SHUTDOWN_TIMEOUT": "500ms",
			"HUFF_MODE":             "debug",
			"HUFF_VERBOSE":          "true",
			"OTHER_ADDR":            ":1",
		}))
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
		require.Equal(t, int64(1024), cfg.HTTP.MaxBodySize)
		require.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
		require.Equal(t, 3*time.Second, cfg.HTTP.WriteTimeout)
		require.Equal(t, 500*time.Millisecond, cfg.HTTP.ShutdownTimeout)
		require.Equal(t, "debug", cfg.Mode)
		require.True(t, cfg.Verbose)
	})

	invalid := map[string]string{
		"HUFF_ADDR":          "",
		"HUFF_MAX_BODY_SIZE": "-5",
		"HUFF_READ_TIMEOUT":  "soon",
		"HUFF_WRITE_TIMEOUT": "0s",
		"HUFF_MODE":          "production",
		"HUFF_VERBOSE":       "maybe",
	}
	for key, value := range invalid {
		t.Run("invalid "+key, func(t *testing.T) {
			_, err := FromEnv("HUFF", lookupFrom(map[string]string{key: value}))
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}
