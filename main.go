package main

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"pos/billing"
	"pos/config"
	"pos/controllers"
	"pos/logger"
	"pos/models"
	"pos/repo"
	"pos/routes"
	"pos/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg.Env, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal("create data dir", zap.Error(err))
	}
	vol, err := store.OpenVolatile(filepath.Join(cfg.DataDir, "pos.db"))
	if err != nil {
		log.Fatal("open volatile store", zap.Error(err))
	}
	defer vol.Close()

	m := store.NewManager(vol, store.NewSeedBackend(), log)
	seed, err := store.EncodeAll(models.DefaultProducts())
	if err != nil {
		log.Fatal("encode default products", zap.Error(err))
	}
	m.Seed(store.StoreProducts, seed)
	if err := m.Load(); err != nil {
		log.Fatal("load stores", zap.Error(err))
	}
	// The folder grant never outlives a session; the env var re-states it
	// on every start.
	if cfg.AssetDir != "" {
		if err := m.SetFolder(cfg.AssetDir); err != nil {
			log.Warn("asset folder unavailable, staying on bundled backend", zap.Error(err))
		}
	}

	repos := repo.New(m)
	svc := billing.NewService(repos.Products, repos.Transactions, log)
	h := controllers.New(m, repos, svc, billing.NewCart(), cfg, log)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))
	app.Static("/static", "./static")

	routes.RegisterRoutes(app, h)

	log.Info("pos server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
