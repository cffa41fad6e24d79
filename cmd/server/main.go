// main.go
//
// Multi-role innovation platform service: startups, research, IP filings and funding
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of innohub.
// innohub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// innohub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with innohub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/handlers"
	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/logging"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/similarity"
	"github.com/localnerve/innohub/internal/storage"
	"github.com/localnerve/innohub/internal/store"
	"go.uber.org/zap"

	_ "github.com/localnerve/innohub/docs/api" // Swagger docs
)

// @title InnoHub API
// @version 1.0.0
// @description Innovation platform for startups, researchers, funding agencies and IP professionals
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/innohub
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

// uploads travel as multipart, so leave room for the envelope
const bodyHeadroom = 1 << 20

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the store and prepare schema or indexes
	st, err := store.Open(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to open store", zap.String("db", cfg.DBType), zap.Error(err))
	}

	if cfg.AdminEmail != "" {
		if err := services.EnsureAdmin(ctx, st, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			zap.L().Fatal("Failed to provision admin account", zap.Error(err))
		}
	}

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		zap.L().Fatal("Failed to prepare upload directory", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	broker := chat.NewBroker(ctx, cfg.RedisURL)

	var recorder ledger.Recorder
	if cfg.LedgerRPCURL != "" {
		client, err := ledger.NewClient(ledger.Config{
			RPCURL:       cfg.LedgerRPCURL,
			Contract:     cfg.LedgerContract,
			PollInterval: cfg.LedgerPollInterval,
			WaitTimeout:  cfg.LedgerWaitTimeout,
		})
		if err != nil {
			zap.L().Fatal("Failed to create ledger client", zap.Error(err))
		}
		recorder = client
		zap.L().Info("ledger recording enabled", zap.String("rpc", client.RPCURL()), zap.String("contract", client.ContractHash()))
	} else {
		zap.L().Warn("LEDGER_RPC_URL not set, filing decisions will not be recorded on chain")
	}

	var primary similarity.Scorer
	if cfg.GenAIAPIKey != "" {
		embedder, err := similarity.NewGenAIEmbedder(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			zap.L().Warn("AI similarity unavailable, using word overlap", zap.Error(err))
		} else {
			primary = similarity.NewEmbeddingScorer(embedder)
		}
	}
	scorer := similarity.NewFallbackScorer(primary, cfg.SimilarityInterval)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    cfg.UploadMaxBytes + bodyHeadroom,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Api-Version, Last-Event-ID",
	}))
	app.Use(compress.New(compress.Config{
		// event streams must flush per message
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/messages/stream")
		},
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("innohub")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.Register(app, handlers.Deps{
		Config:   cfg,
		Store:    st,
		Sessions: services.NewSessions(cfg.SessionSecret, cfg.SessionTTL),
		Broker:   broker,
		Files:    files,
		Ledger:   recorder,
		Scorer:   scorer,
		Shutdown: ctx,
	})

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		zap.L().Info("Gracefully shutting down...")
		// open event streams end first, otherwise Shutdown waits on them
		cancel()
		if err := broker.Close(); err != nil {
			zap.L().Warn("chat broker close failed", zap.Error(err))
		}
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zap.L().Warn("server shutdown incomplete", zap.Error(err))
		}
	}()

	// Start server
	zap.L().Info("Starting server", zap.String("port", cfg.Port), zap.String("db", st.Backend))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zap.L().Error("Server stopped with error", zap.Error(err))
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := st.Close(closeCtx); err != nil {
		zap.L().Warn("store close failed", zap.Error(err))
	}

	zap.L().Info("Server stopped")
}
