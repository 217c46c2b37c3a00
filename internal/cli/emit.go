package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
	"github.com/philipp01105/godotlog/handler/consolehandler"
	"github.com/philipp01105/godotlog/logger"
	"github.com/philipp01105/godotlog/metrics"
)

var emitLevels = []core.Level{core.ErrorLevel, core.WarnLevel, core.InfoLevel, core.DebugLevel, core.TraceLevel}

func newEmitCommand(opts *options) *cobra.Command {
	var (
		modules     []string
		message     string
		viaZap      bool
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Initialize the logger and emit one record per level from each module",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.Builder()
			if err != nil {
				return err
			}

			stats := handler.NewStats()
			console := consolehandler.New(consolehandler.Config{
				Warning: cmd.ErrOrStderr(),
				Info:    cmd.OutOrStdout(),
				OnError: func(error) { stats.IncrementFailed() },
			})
			if err := b.WithConsole(console).WithStats(stats).Init(); err != nil {
				return err
			}
			defer logger.Flush()

			ctx := cmd.Context()
			for _, module := range modules {
				if viaZap {
					emitZap(logger.Zap().Named(module), message)
					continue
				}
				l := logger.Module(module)
				for i, level := range emitLevels {
					l.Log(ctx, handler.CoreLevelToSlog(level), message, "seq", i+1)
				}
			}

			logger.Module("godotlog.cli").Debug("emitted sample records",
				"modules", len(modules), "per_module", len(emitLevels), "zap", viaZap)

			if showMetrics {
				return metrics.WriteText(cmd.OutOrStdout(), metrics.NewRegistry(metrics.ProviderFunc(logger.Stats)))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&modules, "modules", []string{"app", "app.physics", "app.net"}, "origin modules to emit from")
	cmd.Flags().StringVar(&message, "message", "sample record", "message text")
	cmd.Flags().BoolVar(&viaZap, "zap", false, "emit through the zap facade instead of slog")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print dispatch counters in Prometheus text format afterwards")
	return cmd
}

func emitZap(l *zap.Logger, message string) {
	for i, level := range emitLevels {
		fields := []zap.Field{zap.Int("seq", i+1)}
		switch level {
		case core.ErrorLevel:
			l.Error(message, fields...)
		case core.WarnLevel:
			l.Warn(message, fields...)
		case core.InfoLevel:
			l.Info(message, fields...)
		case core.DebugLevel:
			l.Debug(message, fields...)
		default:
			// zap has no trace level; one below debug maps to TRACE
			if ce := l.Check(zap.DebugLevel-1, message); ce != nil {
				ce.Write(fields...)
			}
		}
	}
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Print the severity order and the console channel of each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %s\n", core.OffLevel, "-")
			for _, level := range emitLevels {
				fmt.Fprintf(out, "%-6s %s\n", level, metrics.Channel(level))
			}
			return nil
		},
	}
}
