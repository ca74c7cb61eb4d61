package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/cache"
	"github.com/BruksfildServices01/banquet-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/banquet-admin/internal/db"
	"github.com/BruksfildServices01/banquet-admin/internal/events"
	"github.com/BruksfildServices01/banquet-admin/internal/middleware"
	"github.com/BruksfildServices01/banquet-admin/internal/routes"
	"github.com/BruksfildServices01/banquet-admin/internal/uistate"
	"github.com/BruksfildServices01/banquet-admin/internal/validators"
)

func main() {

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := validators.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// UI STATE (Redis, in-memory fallback)
	// ======================================================
	var uiStore uistate.Store = uistate.NewMemoryStore()
	if rdb := cache.NewRedisClient(cfg); rdb != nil {
		defer rdb.Close()
		uiStore = uistate.NewRedisStore(rdb)
	} else {
		log.Printf("redis unreachable at %s, ui state kept in memory", cfg.RedisAddr)
	}

	// ======================================================
	// EVENTS + AUDIT
	// ======================================================
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPUrl != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPUrl, cfg.AMQPExchange)
		if err != nil {
			log.Printf("event publishing disabled: %v", err)
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	auditDispatcher := audit.NewDispatcher(
		audit.New(db),
		audit.NewPublishSink(publisher),
	)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, auditDispatcher, uiStore)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// flush audit events before the publisher and redis close
	auditDispatcher.Close()
}
