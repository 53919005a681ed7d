package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"minefield/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(getEnvString("CONFIG_FILE", DefaultConfigFile))
	if err != nil {
		logFatal("Failed to load config: %v", err)
	}
	cfg = applyEnv(cfg)
	logging.SetLevel(cfg.LogLevel)

	app, err := newApp(cfg)
	if err != nil {
		logFatal("Failed to initialise: %v", err)
	}
	logInfo("Starting minefield annotator in %s mode", cfg.Env)

	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := app.newRouter(app.templateDir())
	startServer(router, cfg.Port)
}

// newApp builds the application state from a resolved config.
func newApp(cfg Config) (*App, error) {
	schema, err := compileRequestSchema()
	if err != nil {
		return nil, err
	}
	return &App{
		Config:        cfg,
		IsProduction:  cfg.Env == "production",
		StartTime:     time.Now(),
		LimiterMap:    make(map[string]*rate.Limiter),
		RequestSchema: schema,
	}, nil
}

// templateDir picks the minified assets in production when they were built.
func (app *App) templateDir() string {
	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		return "dist"
	}
	logInfo("Serving development assets from source directories")
	return "."
}

func (app *App) newRouter(assetRoot string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png"})))
	router.Use(app.cacheMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.LoadHTMLGlob(assetRoot + "/templates/*.html")
	router.Static("/static", assetRoot+"/static")

	limited := []gin.HandlerFunc{app.rateLimitMiddleware(), bodyLimitMiddleware(MaxBodyBytes)}
	router.GET(RouteHome, app.homeHandler)
	router.POST(RouteHome, append(limited, app.formHandler)...)
	router.POST(RouteAnnotate, append(limited, app.annotateHandler)...)
	router.GET(RouteHealth, app.healthzHandler)
	return router
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
