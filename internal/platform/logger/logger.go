// Package logger owns the process wide zerolog logger
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"yamlgate/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type used across the module
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string
	Format      string // console or json
	Service     string
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
}

// FromEnv reads LOG_ settings
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "debug"),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger, only the first call has any effect
func Init(opt Options) {
	once.Do(func() { root.Store(build(opt)) })
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	c := zerolog.New(w).Level(lvl).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if opt.WithCaller {
		c = c.Caller()
	}
	l := c.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root.Load()
}

// Named returns a child logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

type fieldsKey struct{}

type fields struct{ requestID, caller string }

// WithRequest stores request scoped log fields on ctx, empty values keep what is there
func WithRequest(ctx context.Context, requestID, caller string) context.Context {
	f, _ := ctx.Value(fieldsKey{}).(fields)
	if requestID != "" {
		f.requestID = requestID
	}
	if caller != "" {
		f.caller = caller
	}
	return context.WithValue(ctx, fieldsKey{}, f)
}

// C returns the root logger enriched with the request fields on ctx
func C(ctx context.Context) *Logger {
	f, ok := ctx.Value(fieldsKey{}).(fields)
	if !ok {
		return Get()
	}
	c := Get().With()
	if f.requestID != "" {
		c = c.Str("request_id", f.requestID)
	}
	if f.caller != "" {
		c = c.Str("caller", f.caller)
	}
	l := c.Logger()
	return &l
}
