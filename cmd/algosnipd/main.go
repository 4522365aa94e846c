package main

import (
	"context"
	"log"
	"time"

	"github.com/haatos/algosnip/internal"
	"github.com/haatos/algosnip/internal/handler"
	"github.com/haatos/algosnip/internal/service"
	"github.com/haatos/algosnip/internal/settings"
	"github.com/haatos/algosnip/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "modernc.org/sqlite"
)

func main() {
	internal.InitializeConfiguration()
	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()
	rdb := store.InitDatabase(true)
	defer rdb.Close()
	rwdb := store.InitDatabase(false)
	defer rwdb.Close()
	store.RunMigrations(rwdb)

	scheduler := service.NewScheduler()
	defer scheduler.Shutdown()

	snippetStore := store.NewSnippetSQLiteStore(rdb, rwdb)
	apiKeyStore := store.NewAPIKeySQLiteStore(rdb, rwdb)

	catalogSvc := service.NewCatalogService(snippetStore, settings.Settings.SnippetDirs)
	apiKeySvc := service.NewAPIKeyService(apiKeyStore, service.NewUUIDGen())

	if _, err := catalogSvc.Rescan(context.Background()); err != nil {
		log.Fatal(err)
	}
	if _, err := catalogSvc.ScheduleRescan(
		scheduler,
		time.Duration(internal.Config.RescanIntervalHours),
	); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()

	e := setupEcho()
	g := e.Group("")
	handler.SetupSnippetRoutes(g, catalogSvc, apiKeySvc)
	handler.SetupAPIKeyRoutes(g, apiKeySvc)
	handler.SetupConfigRoutes(g, apiKeySvc)

	log.Printf("serving snippet catalog on %s\n", settings.Settings.BaseURL())
	internal.GracefulShutdown(e, settings.Settings.Port)
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(
		middleware.CORSWithConfig(internal.GetCORSConfig()),
		middleware.RateLimiterWithConfig(internal.GetRateLimiterConfig()),
	)
	return e
}
