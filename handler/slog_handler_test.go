package handler

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/godotlog/core"
)

func newTestSlog(t *testing.T, def core.Level, filters ...core.Filter) (*slog.Logger, *recordingConsole) {
	t.Helper()
	rc := &recordingConsole{}
	h := NewSlogHandler(newTestSink(rc), core.NewFilterSet(def, filters), SlogOptions{})
	return slog.New(h), rc
}

func filter(t *testing.T, module string, level core.Level) core.Filter {
	t.Helper()
	f, err := core.NewFilter(module, level)
	require.NoError(t, err)
	return f
}

// capturingHandler records entry origins and returns err from Handle
type capturingHandler struct {
	modules []string
	err     error
}

func (h *capturingHandler) Handle(entry *core.Entry) error {
	h.modules = append(h.modules, entry.Module)
	return h.err
}

func TestSlogHandler_CustomHandler(t *testing.T) {
	h := &capturingHandler{err: errors.New("host unavailable")}
	sh := NewSlogHandler(h, core.NewFilterSet(core.InfoLevel, nil), SlogOptions{})

	r := slog.NewRecord(fixedClock(), slog.LevelInfo, "ready", 0)
	r.AddAttrs(slog.String(ModuleKey, "app.ui"))

	err := sh.Handle(context.Background(), r)
	assert.EqualError(t, err, "host unavailable")
	assert.Equal(t, []string{"app.ui"}, h.modules)
}

func TestSlogHandler_Enabled(t *testing.T) {
	fs := core.NewFilterSet(core.InfoLevel, nil)
	sh := NewSlogHandler(newTestSink(&recordingConsole{}), fs, SlogOptions{})
	ctx := context.Background()

	assert.False(t, sh.Enabled(ctx, LevelTrace))
	assert.False(t, sh.Enabled(ctx, slog.LevelDebug), "Debug should not be enabled when level is Info")
	assert.True(t, sh.Enabled(ctx, slog.LevelInfo))
	assert.True(t, sh.Enabled(ctx, slog.LevelWarn))
	assert.True(t, sh.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_EnabledUsesMostVerboseFilter(t *testing.T) {
	fs := core.NewFilterSet(core.WarnLevel, []core.Filter{filter(t, "app.physics", core.TraceLevel)})
	sh := NewSlogHandler(newTestSink(&recordingConsole{}), fs, SlogOptions{})

	assert.True(t, sh.Enabled(context.Background(), LevelTrace))
}

func TestSlogHandler_Handle(t *testing.T) {
	logger, rc := newTestSlog(t, core.DebugLevel)

	logger.Info("test message", "key", "value", "count", 42)

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 INFO test message key=value count=42", rc.infos[0])
}

func TestSlogHandler_ModuleAttr(t *testing.T) {
	logger, rc := newTestSlog(t, core.TraceLevel)

	logger.With(ModuleKey, "app.physics").Debug("tick")
	logger.Error("boom", ModuleKey, "app.net")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 DEBUG app.physics tick", rc.infos[0])
	require.Len(t, rc.warnings, 1)
	assert.Equal(t, "2024-01-02 03:04:05 ERROR app.net boom", rc.warnings[0])
}

func TestSlogHandler_RecordModuleOverridesBound(t *testing.T) {
	logger, rc := newTestSlog(t, core.InfoLevel)

	logger.With(ModuleKey, "app").Info("hello", ModuleKey, "app.ui")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 INFO app.ui hello", rc.infos[0])
}

func TestSlogHandler_EmptyModuleIsDropped(t *testing.T) {
	logger, rc := newTestSlog(t, core.InfoLevel)

	logger.With(ModuleKey, "").Info("unbound")
	logger.With(ModuleKey, "app").Info("kept", ModuleKey, "")

	require.Len(t, rc.infos, 2)
	assert.Equal(t, "2024-01-02 03:04:05 INFO unbound", rc.infos[0])
	assert.Equal(t, "2024-01-02 03:04:05 INFO app kept", rc.infos[1])
}

func TestSlogHandler_EmptyKeyAttrIsDropped(t *testing.T) {
	logger, rc := newTestSlog(t, core.InfoLevel)

	logger.Info("loaded", slog.Int("", 5), "scene", "main",
		slog.Group("", slog.String("inline", "yes")))

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 INFO loaded scene=main inline=yes", rc.infos[0])
}

func TestSlogHandler_FilterPerModule(t *testing.T) {
	logger, rc := newTestSlog(t, core.WarnLevel,
		filter(t, "app.physics", core.DebugLevel),
		filter(t, "app.net", core.OffLevel),
	)

	physics := logger.With(ModuleKey, "app.physics")
	net := logger.With(ModuleKey, "app.net")

	physics.Debug("admitted by filter")
	physics.Log(context.Background(), LevelTrace, "below filter")
	net.Error("silenced")
	logger.Info("below default")
	logger.Warn("default admits")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 DEBUG app.physics admitted by filter", rc.infos[0])
	require.Len(t, rc.warnings, 1)
	assert.Equal(t, "2024-01-02 03:04:05 WARN default admits", rc.warnings[0])
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	logger, rc := newTestSlog(t, core.DebugLevel)

	logger.With("request_id", "req-123").Info("test message")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 INFO test message request_id=req-123", rc.infos[0])
}

func TestSlogHandler_WithGroup(t *testing.T) {
	logger, rc := newTestSlog(t, core.DebugLevel)

	logger.WithGroup("auth").Info("test message", "user_id", 123)
	logger.Info("nested", slog.Group("peer", "host", "10.0.0.2", "port", 7777))

	require.Len(t, rc.infos, 2)
	assert.Equal(t, "2024-01-02 03:04:05 INFO test message auth.user_id=123", rc.infos[0])
	assert.Equal(t, "2024-01-02 03:04:05 INFO nested peer.host=10.0.0.2 peer.port=7777", rc.infos[1])
}

func TestSlogHandler_ModuleInsideGroupIsAField(t *testing.T) {
	logger, rc := newTestSlog(t, core.DebugLevel)

	logger.WithGroup("asset").Info("loaded", ModuleKey, "textures")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 INFO loaded asset.module=textures", rc.infos[0])
}

func TestSlogHandler_ResolveCaller(t *testing.T) {
	rc := &recordingConsole{}
	fs := core.NewFilterSet(core.WarnLevel, []core.Filter{
		filter(t, "github.com/philipp01105/godotlog/handler", core.DebugLevel),
	})
	logger := slog.New(NewSlogHandler(newTestSink(rc), fs, SlogOptions{ResolveCaller: true}))

	logger.Debug("from handler package")

	require.Len(t, rc.infos, 1)
	assert.Equal(t, "2024-01-02 03:04:05 DEBUG github.com/philipp01105/godotlog/handler from handler package", rc.infos[0])
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{LevelTrace, core.TraceLevel},
		{slog.LevelDebug - 1, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.coreLevel, SlogLevelToCore(tt.slogLevel), "SlogLevelToCore(%v)", tt.slogLevel)
	}
}

func TestCoreLevelToSlog(t *testing.T) {
	for _, l := range []core.Level{core.ErrorLevel, core.WarnLevel, core.InfoLevel, core.DebugLevel, core.TraceLevel} {
		assert.Equal(t, l, SlogLevelToCore(CoreLevelToSlog(l)))
	}
}
