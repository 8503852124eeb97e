package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/quayfm/quay/internal/browser"
	"github.com/quayfm/quay/internal/config"
	"github.com/quayfm/quay/internal/handlers"
	"github.com/quayfm/quay/internal/logger"
	customMiddleware "github.com/quayfm/quay/internal/middleware"
	"github.com/quayfm/quay/internal/renderer"
	"github.com/quayfm/quay/internal/store"
)

func main() {
	cfg, err := config.Load(os.Getenv("QUAY_CONFIG"))
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)

	factory := &store.MinioFactory{}
	st, err := factory.New(store.Options{
		Endpoint:  cfg.Store.Endpoint,
		AccessKey: cfg.Store.AccessKey,
		SecretKey: cfg.Store.SecretKey,
		Region:    cfg.Store.Region,
		UseSSL:    cfg.Store.UseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to object store")
	}

	e := newServer(st, cfg.Domains, log)

	log.Info().Str("listen", cfg.Server.Listen).Str("endpoint", cfg.Store.Endpoint).Msg("starting server")
	if err := e.Start(cfg.Server.Listen); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newServer(st store.ObjectStore, domains map[string]string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	sessions := browser.NewManager(st)
	browseHandler := handlers.NewBrowseHandler(sessions, log)
	objectHandler := handlers.NewObjectHandler(sessions, st, domains, log)

	// Middleware
	e.Use(customMiddleware.RequestLog(log))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())
	e.Use(customMiddleware.CSRF())
	e.Use(customMiddleware.BrowserSession())

	// Template Renderer
	e.Renderer = renderer.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/buckets")
	})

	// Bucket list
	e.GET("/buckets", browseHandler.ListBuckets)

	// Object browser
	e.GET("/buckets/:bucketName", browseHandler.Browse)
	e.GET("/buckets/:bucketName/up", browseHandler.GoUp)
	e.GET("/buckets/:bucketName/crumb/:index", browseHandler.Breadcrumb)
	e.POST("/buckets/:bucketName/refresh", browseHandler.Refresh)

	// Object operations
	e.POST("/buckets/:bucketName/delete", objectHandler.DeleteObject)
	e.POST("/buckets/:bucketName/clipboard/cut", objectHandler.ClipboardCut)
	e.POST("/buckets/:bucketName/clipboard/copy", objectHandler.ClipboardCopy)
	e.POST("/buckets/:bucketName/clipboard/clear", objectHandler.ClipboardClear)
	e.POST("/buckets/:bucketName/paste", objectHandler.Paste)
	e.POST("/buckets/:bucketName/move", objectHandler.Move)
	e.POST("/buckets/:bucketName/upload-url", objectHandler.UploadURL)
	e.POST("/buckets/:bucketName/uploaded", objectHandler.UploadCompleted)
	e.GET("/buckets/:bucketName/folder/create", objectHandler.CreateFolderModal)
	e.POST("/buckets/:bucketName/folder/create", objectHandler.CreateFolder)
	e.POST("/buckets/:bucketName/share", objectHandler.Share)
	e.GET("/buckets/:bucketName/public-url", objectHandler.PublicURL)

	return e
}
