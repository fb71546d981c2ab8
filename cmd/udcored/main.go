// Command udcored hosts the runtime foundation behind a small HTTP
// surface: health/readiness/liveness probes, Prometheus metrics, and a
// debug endpoint exposing worker-pool counters and the cipher
// hardware-acceleration state. It exists
// to exercise the library end to end; all domain logic lives in the
// packages it wires together.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kenchrcum/udcore-go/geozone"
	"github.com/kenchrcum/udcore-go/internal/config"
	"github.com/kenchrcum/udcore-go/internal/crypto"
	"github.com/kenchrcum/udcore-go/internal/debug"
	"github.com/kenchrcum/udcore-go/internal/metrics"
	"github.com/kenchrcum/udcore-go/internal/middleware"
	"github.com/kenchrcum/udcore-go/vfile"
	"github.com/kenchrcum/udcore-go/vfile/handlers"
	"github.com/kenchrcum/udcore-go/workerpool"
)

var appVersion = "dev"

func main() {
	var (
		configPath  = flag.String("config", "udcored.yaml", "Path to the YAML configuration file")
		listenAddr  = flag.String("listen", ":8080", "HTTP listen address")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		enableTrace = flag.Bool("trace", false, "Emit OpenTelemetry spans to stdout")
	)
	flag.Parse()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	}
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Route the library's debug prints through the structured logger.
	debug.SetPrintHook(func(msg string) { logger.Debug(msg) })

	if err := crypto.SelfTest(); err != nil {
		logger.WithError(err).Fatal("Cipher self-test failed")
	}

	if *enableTrace {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			logger.WithError(err).Fatal("Building trace exporter")
		}
		provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(provider)
		defer provider.Shutdown(context.Background())
	}

	watcher, err := config.NewWatcher(*configPath, logger)
	if err != nil {
		logger.WithError(err).WithField("path", *configPath).Fatal("Loading configuration")
	}
	defer watcher.Close()
	cfg := watcher.Current()

	logger.WithFields(logrus.Fields(crypto.DescribeAcceleration(&cfg.Hardware).Fields())).
		Info("Hardware acceleration")

	m := metrics.NewMetrics()
	metrics.SetVersion(appVersion)

	threadCount := cfg.WorkerPool.ThreadCount
	if threadCount <= 0 {
		threadCount = 4
	}
	pool, err := workerpool.Create(threadCount,
		workerpool.WithLogger(logger),
		workerpool.WithMetrics(m.WorkerPoolQueueDepth, m.WorkerPoolActiveWorkers),
	)
	if err != nil {
		logger.WithError(err).Fatal("Creating worker pool")
	}
	defer pool.Destroy()

	vfile.RegisterHandler("", handlers.Local{}, true)
	vfile.RegisterHandler("raw://*", handlers.Raw{}, true)
	if cfg.Backend.Provider != "" {
		s3Handler, err := handlers.NewS3Handler(context.Background(), &cfg.Backend)
		if err != nil {
			logger.WithError(err).Fatal("Building S3 handler")
		}
		vfile.RegisterHandler("s3://*", s3Handler, true)
		logger.WithField("provider", cfg.Backend.Provider).Info("S3 handler registered")
	}

	loadZoneRegistry(logger, m, cfg)
	watcher.OnChange(func(next *config.Config) {
		if next.GeoZone.RegistryPath != cfg.GeoZone.RegistryPath {
			loadZoneRegistry(logger, m, next)
		}
	})

	router := mux.NewRouter()
	router.Use(middleware.Recovery(logger), middleware.Logging(logger))
	router.HandleFunc("/health", metrics.HealthHandler()).Methods("GET")
	router.HandleFunc("/ready", metrics.ReadinessHandler(func(context.Context) error {
		// The pool rejects work once destroyed; probing it keeps the
		// readiness signal honest during shutdown.
		return pool.AddTask(nil, func(any, error) {})
	})).Methods("GET")
	router.HandleFunc("/live", metrics.LivenessHandler()).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")
	router.HandleFunc("/debug/counters", debugCounters(pool)).Methods("GET")

	server := &http.Server{
		Addr:         *listenAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.WithField("addr", *listenAddr).Info("Listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// The main goroutine is the pool's driving thread: it drains
	// post-work until shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	statsTicker := time.NewTicker(10 * time.Second)
	defer statsTicker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := pool.DoPostWork(0); err == nil {
				m.WorkerPoolTasksTotal.WithLabelValues("post").Add(float64(n))
			}
		case <-statsTicker.C:
			m.UpdateRuntimeStats()
		case sig := <-stop:
			logger.WithField("signal", sig.String()).Info("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			server.Shutdown(ctx)
			return
		}
	}
}

func loadZoneRegistry(logger *logrus.Logger, m *metrics.Metrics, cfg *config.Config) {
	path := cfg.GeoZone.RegistryPath
	if path == "" {
		return
	}
	data, err := vfile.Load(context.Background(), path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Reading geo-zone registry")
		return
	}
	loaded, failed, err := geozone.LoadZonesFromJSON(string(data), logger)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Parsing geo-zone registry")
		return
	}
	m.GeoRegistryZones.Add(float64(loaded))
	logger.WithFields(logrus.Fields{
		"path":   path,
		"loaded": loaded,
		"failed": failed,
	}).Info("Geo-zone registry loaded")
}

func debugCounters(pool *workerpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, queued := pool.Stats()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"worker_pool": map[string]int{
				"active_workers": active,
				"queued_tasks":   queued,
			},
			"crypto": crypto.DescribeAcceleration(nil).Fields(),
		})
	}
}
