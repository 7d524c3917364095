package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
	"mercator-hq/crossword/pkg/crossword/model"
	"mercator-hq/crossword/pkg/crossword/schema"
	"mercator-hq/crossword/pkg/telemetry/logging"
	"mercator-hq/crossword/pkg/telemetry/tracing"
)

const tracerName = "mercator-hq/crossword/compiler"

// DefaultMaxGridSize is the largest width or height accepted unless
// WithMaxGridSize says otherwise.
const DefaultMaxGridSize = 500

var discardLogger = logging.Discard()

// Outcome summarizes one Compile call for a Recorder.
type Outcome struct {
	Duration    time.Duration
	ErrorType   xwErrors.ErrorType // empty on success
	AcrossClues int
	DownClues   int
	LightCells  int
}

// Succeeded reports whether the compile produced a model.
func (o Outcome) Succeeded() bool {
	return o.ErrorType == ""
}

// Recorder receives an Outcome after every Compile call.
type Recorder interface {
	ObserveCompile(Outcome)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCompile(Outcome) {}

// Compiler turns crossword definitions into crossword models. A Compiler
// holds no per-compile state and is safe for concurrent use.
type Compiler struct {
	logger      *slog.Logger
	recorder    Recorder
	tracer      trace.Tracer
	maxGridSize int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the compile outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Compiler) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithTracer sets the tracer. The default comes from the global
// OpenTelemetry tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Compiler) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithMaxGridSize bounds the width and height a definition may declare.
// Larger grids fail with a structural error before any cell is allocated.
func WithMaxGridSize(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.maxGridSize = n
		}
	}
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		logger:      discardLogger,
		recorder:    nopRecorder{},
		tracer:      otel.Tracer(tracerName),
		maxGridSize: DefaultMaxGridSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile decodes raw as a crossword definition and compiles it. raw is the
// generic value produced by a YAML or JSON decoder: maps keyed by string,
// slices, strings and numbers.
//
// Compile either returns a complete model or an error; it never returns a
// partially built model.
func (c *Compiler) Compile(ctx context.Context, raw any) (*model.Crossword, error) {
	ctx, span := c.tracer.Start(ctx, "crossword.Compile")
	defer span.End()

	start := time.Now()
	logger := c.loggerFor(ctx)

	def, err := schema.DecodeDefinition(raw)
	if err != nil {
		return c.fail(span, logger, start, Outcome{}, err)
	}

	return c.compileDefinition(ctx, span, logger, start, def)
}

// CompileDefinition compiles an already decoded definition.
func (c *Compiler) CompileDefinition(ctx context.Context, def *schema.Definition) (*model.Crossword, error) {
	ctx, span := c.tracer.Start(ctx, "crossword.Compile")
	defer span.End()

	start := time.Now()
	logger := c.loggerFor(ctx)
	if def == nil {
		return c.fail(span, logger, start, Outcome{},
			xwErrors.Newf(xwErrors.ErrorTypeStructural, "crossword definition is missing"))
	}
	return c.compileDefinition(ctx, span, logger, start, def)
}

func (c *Compiler) compileDefinition(ctx context.Context, span trace.Span, logger *slog.Logger, start time.Time, def *schema.Definition) (*model.Crossword, error) {
	outcome := Outcome{
		AcrossClues: len(def.AcrossClues),
		DownClues:   len(def.DownClues),
	}
	span.SetAttributes(
		attribute.Int(tracing.AttrGridWidth, def.Width),
		attribute.Int(tracing.AttrGridHeight, def.Height),
		attribute.Int(tracing.AttrAcrossClues, outcome.AcrossClues),
		attribute.Int(tracing.AttrDownClues, outcome.DownClues),
	)

	if len(def.Extra) > 0 {
		logger.Warn("Ignoring unknown definition properties", "properties", def.Extra)
	}

	if err := checkGridSize(def.Width, def.Height, c.maxGridSize); err != nil {
		return c.fail(span, logger, start, outcome, err)
	}

	across, err := c.compileClues(ctx, logger, def.AcrossClues, model.DirectionAcross)
	if err != nil {
		return c.fail(span, logger, start, outcome, err)
	}
	down, err := c.compileClues(ctx, logger, def.DownClues, model.DirectionDown)
	if err != nil {
		return c.fail(span, logger, start, outcome, err)
	}

	if err := c.phase(ctx, "crossword.ValidateReferences", func() error {
		return validateReferences(across, down)
	}); err != nil {
		return c.fail(span, logger, start, outcome, err)
	}

	var cw *model.Crossword
	if err := c.phase(ctx, "crossword.Assemble", func() error {
		var err error
		cw, err = assemble(def.Width, def.Height, across, down, c.maxGridSize, logger)
		return err
	}); err != nil {
		return c.fail(span, logger, start, outcome, err)
	}

	_ = c.phase(ctx, "crossword.Link", func() error {
		link(cw, logger)
		return nil
	})

	outcome.Duration = time.Since(start)
	outcome.LightCells = len(cw.LightCells)
	c.recorder.ObserveCompile(outcome)

	span.SetAttributes(attribute.Int(tracing.AttrLightCells, outcome.LightCells))
	logger.Debug("Crossword compiled",
		"width", cw.Width,
		"height", cw.Height,
		"across", outcome.AcrossClues,
		"down", outcome.DownClues,
		"light_cells", outcome.LightCells,
		"duration", outcome.Duration,
	)
	return cw, nil
}

func (c *Compiler) compileClues(ctx context.Context, logger *slog.Logger, specs []*schema.ClueSpec, dir model.Direction) ([]*model.Clue, error) {
	list := listField(dir)
	clues := make([]*model.Clue, 0, len(specs))
	err := c.phase(ctx, "crossword.CompileClues", func() error {
		for i, spec := range specs {
			clue, err := compileClue(spec, dir, logger)
			if err != nil {
				return withListPath(err, list, i)
			}
			logger.Debug("Clue compiled",
				"id", clue.ID,
				"length", clue.SegmentLength,
				"segments", len(clue.TailDescriptors)+1,
			)
			clues = append(clues, clue)
		}
		return nil
	}, attribute.String(tracing.AttrDirection, string(dir)))
	return clues, err
}

// phase runs fn inside a child span and records its error on the span.
func (c *Compiler) phase(ctx context.Context, name string, fn func() error, attrs ...attribute.KeyValue) error {
	_, span := c.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	err := fn()
	if err != nil {
		tracing.SetErrorAttributes(span, err, string(xwErrors.TypeOf(err)))
	}
	return err
}

func (c *Compiler) fail(span trace.Span, logger *slog.Logger, start time.Time, outcome Outcome, err error) (*model.Crossword, error) {
	outcome.Duration = time.Since(start)
	outcome.ErrorType = xwErrors.TypeOf(err)
	if outcome.ErrorType == "" {
		outcome.ErrorType = xwErrors.ErrorTypeStructural
	}
	c.recorder.ObserveCompile(outcome)

	tracing.SetErrorAttributes(span, err, string(outcome.ErrorType))
	logger.Debug("Crossword compile failed", "type", outcome.ErrorType, "error", err)
	return nil, err
}

func (c *Compiler) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, c.logger)
}

// validateReferences checks clue ids and tail descriptors before assembly so
// that the linker only ever sees single, linear, acyclic chains.
func validateReferences(across, down []*model.Clue) error {
	type declaration struct {
		field string
		index int
	}

	paths := make(map[*model.Clue]string, len(across)+len(down))
	seen := make(map[string]declaration, len(across)+len(down))
	for _, list := range []struct {
		field string
		clues []*model.Clue
	}{
		{schema.FieldAcrossClues, across},
		{schema.FieldDownClues, down},
	} {
		for i, clue := range list.clues {
			path := fmt.Sprintf("%s[%d].%s", list.field, i, schema.FieldClue)
			paths[clue] = path
			if first, ok := seen[clue.ID]; ok {
				var err *xwErrors.Error
				if first.field == list.field {
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"clue id %s is declared twice in %s (entries %d and %d)", clue.ID, list.field, first.index, i)
				} else {
					// An explicit suffix on the head ("3d." in acrossClues)
					// can collide with the other list's ids.
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"clue id %s is declared in both %s[%d] and %s[%d]", clue.ID, first.field, first.index, list.field, i).
						WithSuggestion("clue ids must be unique across both directions")
				}
				return err.WithClue(clue.ID).WithPath(path)
			}
			seen[clue.ID] = declaration{field: list.field, index: i}
		}
	}

	claimed := make(map[*model.Clue]*model.Clue)
	for _, list := range [][]*model.Clue{across, down} {
		for _, head := range list {
			for _, desc := range head.TailDescriptors {
				tail := findSegment(across, down, desc)
				var err *xwErrors.Error
				switch {
				case tail == nil:
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"clue %s refers to segment %s, which is not defined", head.ID, desc).
						WithSuggestion(fmt.Sprintf("declare clue %s or remove it from the label of %s", desc, head.ID))
				case tail == head:
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"clue %s lists itself as one of its segments", head.ID)
				case len(tail.TailDescriptors) > 0:
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"clue %s refers to segment %s, which has segments of its own", head.ID, tail.ID).
						WithSuggestion(fmt.Sprintf("list every segment on the label of the head clue %s", head.ID))
				case claimed[tail] != nil:
					err = xwErrors.Newf(xwErrors.ErrorTypeReference,
						"segment %s is claimed by clue %s and clue %s", tail.ID, claimed[tail].ID, head.ID)
				}
				if err != nil {
					return err.WithClue(head.ID).WithPath(paths[head])
				}
				claimed[tail] = head
			}
		}
	}
	return nil
}

func listField(dir model.Direction) string {
	if dir == model.DirectionDown {
		return schema.FieldDownClues
	}
	return schema.FieldAcrossClues
}
