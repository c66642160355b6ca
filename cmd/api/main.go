package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"edudb-server/cmd/api/wire"
	"edudb-server/cmd/config"
	"edudb-server/internal/infra/httpserver"
	"edudb-server/internal/infra/node"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const _shutdownTimeout = 10 * time.Second

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	configFile := pflag.String("config", "", "path to server.yaml")
	pflag.Parse()
	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	}

	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("edudb is initializing", slog.String("node_id", node.GetNodeInfo().ID))
	slog.Debug("config loaded", "data", config)

	shutdownOtel := startOTel(config.OTel.Endpoint)

	app, cleanup, err := wire.InitializeApplication(config)
	if err != nil {
		slog.Error("failed to initialize application", slog.String("error", err.Error()))
		panic(err)
	}

	appCtx, cancelFn := context.WithCancel(context.Background())
	if err := app.Pool.Initialize(appCtx); err != nil {
		slog.Warn("starting without a database", slog.String("error", err.Error()))
	}

	httpServer := httpserver.NewServer(
		httpserver.Options{
			Address:        config.HTTP.Address,
			AllowedOrigins: config.HTTP.AllowedOrigins,
			StaticDir:      config.HTTP.StaticDir,
		},
		app.DatabaseController,
		app.ProgressController,
		app.CertificateController,
	)
	go httpServer.Run()

	var wg sync.WaitGroup
	wg.Add(1)
	go app.CertificateCacheWorker.Run(appCtx, wg.Done)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancelShutdown()
	httpServer.Shutdown(shutdownCtx)

	cancelFn()
	wg.Wait()
	app.Broker.Stop()
	cleanup()
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.String("error", err.Error()))
	}

	slog.Info("good bye!!!")
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{1, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 10000}
)

// startOTel exports traces and metrics over OTLP when an endpoint is configured.
// Without one the global no-op providers stay in place.
func startOTel(endpoint string) ShutdownFunc {
	if endpoint == "" {
		slog.Info("otel endpoint not configured, telemetry export disabled")
		return func() error { return nil }
	}

	slog.Info("starting OTel providers", slog.String("endpoint", endpoint))
	shutdown, err := otelStart(context.Background(), endpoint)
	if err != nil {
		panic(err)
	}

	return shutdown
}

func otelStart(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("edudb-server"),
			semconv.ServiceVersionKey.String(node.Version),
		)),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func startMetricsProvider(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMeterProvider(metricExporter metric.Exporter) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}
