// Command pathlab replays HCL graph scenarios and reports shortest paths.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/pathlab/internal/cli"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/ctxlog"
	"github.com/katalvlaran/pathlab/internal/logging"
	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/service"
)

const serviceName = "pathlab"

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads configuration, replays the scenarios named in args and writes
// the report to outW. Logs and exported spans go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts, shouldExit, err := cli.Parse(args, outW, cfg)
	if err != nil || shouldExit {
		return err
	}

	logger := logging.New(opts.Config.Logging, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	tp, shutdown, err := tracerProvider(ctx, opts.Trace, errW)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("Trace shutdown failed.", "error", err)
		}
	}()

	sc, err := scenario.Load(ctx, opts.Paths...)
	if err != nil {
		return err
	}

	svc := service.New(
		service.WithLogger(logger),
		service.WithTracerProvider(tp),
		service.WithSelection(opts.Selection),
	)
	outcomes, err := scenario.Replay(ctx, svc, sc)
	if err != nil {
		return err
	}

	return writeReport(outW, opts.Output, svc, outcomes)
}

// tracerProvider returns a provider exporting to w when enabled, or a no-op
// provider otherwise, plus its shutdown function.
func tracerProvider(ctx context.Context, enabled bool, w io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	if !enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("trace exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		return nil, nil, fmt.Errorf("trace resource: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)

	return tp, tp.Shutdown, nil
}
