package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"mercator-hq/crossword/pkg/cli"
	"mercator-hq/crossword/pkg/config"
	"mercator-hq/crossword/pkg/crossword"
	"mercator-hq/crossword/pkg/crossword/compiler"
	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/source"
	"mercator-hq/crossword/pkg/telemetry/logging"
	"mercator-hq/crossword/pkg/telemetry/tracing"
)

// environment is the configuration and telemetry shared by every command.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	tracer *tracing.Tracer
	loader *source.Loader
}

// newEnvironment loads configuration, applies the global flag overrides and
// sets up logging and tracing. The caller must call close.
func newEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}

	switch {
	case logLevel != "":
		cfg.Logging.Level = logLevel
	case verbose:
		cfg.Logging.Level = "debug"
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Writer:    os.Stderr,
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}

	tracer, err := tracing.New(ctx, &cfg.Tracing, Version)
	if err != nil {
		return nil, cli.NewConfigError("tracing", err.Error())
	}

	logger.Debug("Configuration loaded",
		"config", cfgFile,
		"tracing", tracer.Enabled(),
		"metrics", cfg.Metrics.Enabled,
	)

	return &environment{
		cfg:    cfg,
		logger: logger,
		tracer: tracer,
		loader: source.NewLoader().
			WithMaxFileSize(cfg.Compiler.MaxFileSize).
			WithContextLines(cfg.Compiler.ContextLines),
	}, nil
}

// compiler returns a compiler wired to the environment's logger and tracer.
func (e *environment) compiler(opts ...compiler.Option) *compiler.Compiler {
	base := []compiler.Option{
		compiler.WithLogger(e.logger),
		compiler.WithTracer(e.tracer.Tracer()),
		compiler.WithMaxGridSize(e.cfg.Compiler.MaxGridSize),
	}
	return compiler.New(append(base, opts...)...)
}

// compileFile loads and compiles one definition under a fresh compile id.
func (e *environment) compileFile(ctx context.Context, c *compiler.Compiler, path string) (*model.Crossword, error) {
	id := uuid.NewString()
	ctx = logging.WithCompileID(ctx, id)
	ctx = logging.WithSource(ctx, path)

	ctx, span := e.tracer.Start(ctx, "xwc.CompileFile", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	tracing.SetSourceAttributes(span, id, path)

	src, err := e.loader.Load(path)
	if err != nil {
		tracing.SetErrorAttributes(span, err, string(xwErrors.TypeOf(err)))
		logging.FromContext(ctx, e.logger).Debug("Definition not loaded", "error", err)
		return nil, err
	}
	return crossword.CompileSource(ctx, src, c)
}

func (e *environment) close(ctx context.Context) {
	if err := e.tracer.Shutdown(ctx); err != nil {
		e.logger.Warn("Tracer shutdown failed", "error", err)
	}
}

func withEnvironment(ctx context.Context, fn func(env *environment) error) error {
	env, err := newEnvironment(ctx)
	if err != nil {
		return err
	}
	defer env.close(context.WithoutCancel(ctx))
	return fn(env)
}
