// Package logger builds the slog logger used by the service and a fiber
// middleware that writes one line per request.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options mirrors the LOG_* settings from config.
type Options struct {
	Level  string
	Format string
	// File enables a rotated log file next to stdout.
	File string
}

// New returns a logger writing to stdout and, when File is set, to a
// lumberjack-rotated file as well.
func New(opts Options) *slog.Logger {
	var output io.Writer = os.Stdout
	if opts.File != "" {
		output = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		})
	}
	return NewWithWriter(output, opts)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware logs method, path, status and duration of every request. It
// picks up the id stored by fiber's requestid middleware when present.
func Middleware(log *slog.Logger) fiber.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		}
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			attrs = append(attrs, "request_id", id)
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
			log.Error("http request", attrs...)
		} else {
			log.Info("http request", attrs...)
		}
		return err
	}
}
