package helpers

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

// ZapLogger adapts a zap logger to Logger. Every line is logged at info.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

func (l *ZapLogger) Println(v ...any) {
	l.sugar.Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
func (l *ZapLogger) Printf(format string, v ...any) {
	l.sugar.Info(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}
func (l *ZapLogger) Print(v ...any) {
	l.sugar.Info(fmt.Sprint(v...))
}

// With returns a logger that attaches the key/value pairs to every line.
func (l *ZapLogger) With(keysAndValues ...any) *ZapLogger {
	return &ZapLogger{sugar: l.sugar.With(keysAndValues...)}
}

func (l *ZapLogger) Sync() {
	_ = l.sugar.Sync()
}

var DefaultLogger = NewZapLogger(zap.NewNop())

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogging replaces DefaultLogger with a zap logger writing to stderr.
// format is "console" or "json".
func InitLogging(level string, format string) (*ZapLogger, Error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	case "console", "":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.ConsoleSeparator = " | "
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), parseLevel(level))
	DefaultLogger = NewZapLogger(zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)))
	return DefaultLogger, NilError
}

type _silentLogger struct {
}

func (l *_silentLogger) Println(v ...any) {
}
func (l *_silentLogger) Printf(format string, v ...any) {
}
func (l *_silentLogger) Print(v ...any) {
}

var SilentLogger = _silentLogger{}

// FuncLogger forwards every formatted line to a callback.
type FuncLogger func(message string)

func (f FuncLogger) Println(v ...any) {
	f(fmt.Sprintln(v...))
}
func (f FuncLogger) Printf(format string, v ...any) {
	f(fmt.Sprintf(format, v...))
}
func (f FuncLogger) Print(v ...any) {
	f(fmt.Sprint(v...))
}
