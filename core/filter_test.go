package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFilter(t *testing.T, module string, level Level) Filter {
	t.Helper()
	f, err := NewFilter(module, level)
	require.NoError(t, err)
	return f
}

func TestNewFilter_Accessors(t *testing.T) {
	for _, l := range []Level{OffLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel} {
		f, err := NewFilter("godotlog.core", l)
		require.NoError(t, err)
		assert.Equal(t, "godotlog.core", f.Module())
		assert.Equal(t, l, f.Level())
	}
}

func TestNewFilter_EmptyModule(t *testing.T) {
	_, err := NewFilter("", DebugLevel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyModule))
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		module string
		origin string
		want   bool
	}{
		{"app.physics", "app.physics", true},
		{"app.physics", "app.physics.rigid", true},
		{"app.physics", "app.physicsx", false},
		{"app.physics", "app", false},
		{"github.com/acme/game", "github.com/acme/game/net", true},
		{"github.com/acme/game", "github.com/acme/gamepad", false},
		{"game", "game::render", true},
		{"app.", "app.anything", true},
		{"app.net", "other.app.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.module+"|"+tt.origin, func(t *testing.T) {
			f := mustFilter(t, tt.module, DebugLevel)
			assert.Equal(t, tt.want, f.Matches(tt.origin))
		})
	}
}

func TestFilterSet_Threshold(t *testing.T) {
	fs := NewFilterSet(WarnLevel, []Filter{
		mustFilter(t, "app", InfoLevel),
		mustFilter(t, "app.physics", DebugLevel),
		mustFilter(t, "app.net", OffLevel),
	})

	tests := []struct {
		origin string
		want   Level
	}{
		{"", WarnLevel},
		{"engine", WarnLevel},
		{"app", InfoLevel},
		{"app.ui", InfoLevel},
		{"app.physics", DebugLevel},
		{"app.physics.rigid", DebugLevel},
		{"app.net", OffLevel},
		{"app.network", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, fs.Threshold(tt.origin))
		})
	}
}

func TestFilterSet_DuplicateModuleLastWins(t *testing.T) {
	fs := NewFilterSet(WarnLevel, []Filter{
		mustFilter(t, "app.physics", DebugLevel),
		mustFilter(t, "app.physics", ErrorLevel),
	})

	assert.Len(t, fs.Filters(), 2, "duplicates are retained")
	assert.Equal(t, ErrorLevel, fs.Threshold("app.physics"))
}

func TestFilterSet_LongestPrefixBeatsInsertionOrder(t *testing.T) {
	fs := NewFilterSet(WarnLevel, []Filter{
		mustFilter(t, "app.physics", TraceLevel),
		mustFilter(t, "app", ErrorLevel),
	})

	assert.Equal(t, TraceLevel, fs.Threshold("app.physics.rigid"))
	assert.Equal(t, ErrorLevel, fs.Threshold("app.ui"))
}

func TestFilterSet_Enabled(t *testing.T) {
	fs := NewFilterSet(WarnLevel, []Filter{
		mustFilter(t, "app.physics", DebugLevel),
		mustFilter(t, "app.net", OffLevel),
	})

	assert.True(t, fs.Enabled("app.physics", DebugLevel))
	assert.False(t, fs.Enabled("app.physics", TraceLevel))
	assert.False(t, fs.Enabled("app.net", ErrorLevel))
	assert.True(t, fs.Enabled("", WarnLevel))
	assert.False(t, fs.Enabled("", InfoLevel))
}

func TestFilterSet_MaxLevel(t *testing.T) {
	assert.Equal(t, WarnLevel, NewFilterSet(WarnLevel, nil).MaxLevel())

	fs := NewFilterSet(WarnLevel, []Filter{
		mustFilter(t, "app.net", OffLevel),
		mustFilter(t, "app.physics", DebugLevel),
	})
	assert.Equal(t, DebugLevel, fs.MaxLevel())
	assert.Equal(t, WarnLevel, fs.Default())
}

func TestFilterSet_CopiesInput(t *testing.T) {
	filters := []Filter{mustFilter(t, "app", DebugLevel)}
	fs := NewFilterSet(WarnLevel, filters)

	filters[0] = mustFilter(t, "other", OffLevel)
	got := fs.Filters()
	got[0] = mustFilter(t, "mutated", OffLevel)

	assert.Equal(t, "app", fs.Filters()[0].Module())
}
