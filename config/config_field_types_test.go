package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

func TestOptLogLevel(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		o := OptLogLevel{}
		assert.False(t, o.IsDefined())
		assert.Equal(t, ldlog.Warn, o.GetOrElse(ldlog.Warn))
	})

	t.Run("defined value", func(t *testing.T) {
		o := NewOptLogLevel(ldlog.Error)
		assert.True(t, o.IsDefined())
		assert.Equal(t, ldlog.Error, o.GetOrElse(ldlog.Warn))
	})

	t.Run("parses valid level, case-insensitively", func(t *testing.T) {
		for levelName, level := range map[string]ldlog.LogLevel{
			"debug": ldlog.Debug,
			"INFO":  ldlog.Info,
			"wArN":  ldlog.Warn,
			"error": ldlog.Error,
			"none":  ldlog.None,
		} {
			o, err := NewOptLogLevelFromString(levelName)
			assert.NoError(t, err)
			assert.True(t, o.IsDefined())
			assert.Equal(t, level, o.GetOrElse(0))
		}
	})

	t.Run("empty string is undefined, not an error", func(t *testing.T) {
		o, err := NewOptLogLevelFromString("")
		assert.NoError(t, err)
		assert.Equal(t, OptLogLevel{}, o)
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		o, err := NewOptLogLevelFromString("wrong")
		assert.Equal(t, errBadLogLevel("wrong"), err)
		assert.Equal(t, OptLogLevel{}, o)
	})

	t.Run("UnmarshalText", func(t *testing.T) {
		var o OptLogLevel
		assert.NoError(t, o.UnmarshalText([]byte("info")))
		assert.Equal(t, NewOptLogLevel(ldlog.Info), o)

		assert.Error(t, o.UnmarshalText([]byte("wrong")))
		assert.Equal(t, NewOptLogLevel(ldlog.Info), o) // unchanged on error
	})
}
