package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tesseract-hub/photon-gateway/internal/clients"
	"github.com/tesseract-hub/photon-gateway/internal/config"
	"github.com/tesseract-hub/photon-gateway/internal/dispatcher"
	"github.com/tesseract-hub/photon-gateway/internal/handlers"
	"github.com/tesseract-hub/photon-gateway/internal/middleware"
	"github.com/tesseract-hub/photon-gateway/internal/tracing"
)

const serviceName = "photon-gateway"

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, using system environment variables")
	}

	cfg := config.Load()

	pool, err := clients.NewPool(cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize elasticsearch pool: %v", err)
	}

	tracerProvider, err := tracing.Init(serviceName)
	if err != nil {
		logrus.Warnf("tracing disabled: %v", err)
	}

	d := dispatcher.New(pool)
	h := handlers.New(d, pool, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(logrus.StandardLogger()),
		middleware.Logger(logrus.StandardLogger()),
		middleware.Metrics(),
		middleware.CORS(),
	)
	if tracerProvider != nil {
		router.Use(tracing.GinMiddleware(serviceName))
	}

	router.GET("/health", h.Health)
	router.GET("/search", h.Search)
	router.GET("/reverse", h.Reverse)
	router.GET("/lookup", h.Lookup)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%d", cfg.HostAddress, cfg.HostPort)
	server := &http.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", addr).Info("photon-gateway starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down photon-gateway")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error shutting down server: %v", err)
	}

	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("error shutting down tracer provider: %v", err)
		}
	}

	logrus.Info("photon-gateway stopped")
}
