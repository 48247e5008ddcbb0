package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"blockworld/internal/config"
	"blockworld/internal/game"
	"blockworld/internal/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	duration := flag.Duration("duration", 10*time.Second, "how long to run the simulation (0 runs until interrupted)")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :9100")
	walk := flag.Bool("walk", false, "hold the forward key for the whole run")
	logLevel := flag.String("log-level", "", "override the configured log level")
	dev := flag.Bool("dev", false, "human-readable development logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *dev {
		cfg.Log.Development = true
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.Apply(cfg)

	var metricsServer *http.Server
	if *metricsAddr != "" {
		metricsServer = serveMetrics(*metricsAddr, log)
	}

	// Runs on normal exit, on Fatal and on SIGINT/SIGTERM.
	closer.Bind(func() {
		if metricsServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(ctx)
		}
		_ = log.Sync()
	})
	defer closer.Close()

	session := game.NewSession(log)
	if *walk {
		session.Input.KeyDown('w')
	}

	app := game.NewApp(session, log.Named("app"))
	app.OnTick = func(f game.Frame) {
		if f.Rebuilt {
			log.Debug("View mesh rebuilt",
				zap.Int("faces", f.Mesh.Faces()),
				zap.Float32("x", f.Position.X()),
				zap.Float32("z", f.Position.Z()))
		}
	}

	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		closer.Fatalln(err)
	}

	p := session.Player
	log.Info("Final state",
		zap.Int("ticks", session.Ticks),
		zap.Float32("x", p.Position.X()),
		zap.Float32("y", p.Position.Y()),
		zap.Float32("z", p.Position.Z()),
		zap.Bool("landing", p.Landing),
		zap.Int("mesh_faces", session.Mesh().Faces()))
}

func serveMetrics(addr string, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("Serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", zap.Error(err))
		}
	}()
	return srv
}
