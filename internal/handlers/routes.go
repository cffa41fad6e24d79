// routes.go
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

package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/config"
	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/middleware"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/similarity"
	"github.com/localnerve/innohub/internal/storage"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
)

// Deps are the collaborators shared by the route handlers
type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Sessions *services.Sessions
	Broker   chat.Broker
	Files    *storage.FileStore
	Ledger   ledger.Recorder
	Scorer   similarity.Scorer
	Shutdown context.Context
}

// Register mounts every API route under /api
func Register(app *fiber.App, d Deps) {
	cfg := d.Config

	authH := &AuthHandler{Store: d.Store, Sessions: d.Sessions, Secure: cfg.SessionSecure}
	startupH := &StartupHandler{Store: d.Store}
	paperH := &PaperHandler{Store: d.Store}
	filingH := &FilingHandler{
		Store:           d.Store,
		Ledger:          d.Ledger,
		LedgerTimeout:   cfg.LedgerWaitTimeout + 30*time.Second,
		Scorer:          d.Scorer,
		SimilarityLimit: cfg.SimilarityLimit,
	}
	fundingH := &FundingHandler{Store: d.Store}
	messageH := &MessageHandler{Store: d.Store, Broker: d.Broker, Heartbeat: cfg.ChatHeartbeat, Shutdown: d.Shutdown}
	uploadH := &UploadHandler{Store: d.Store, Files: d.Files, MaxBytes: int64(cfg.UploadMaxBytes)}
	adminH := &AdminHandler{Store: d.Store, Config: cfg}

	signedIn := middleware.Auth(d.Sessions)
	optional := middleware.Optional(d.Sessions)
	role := func(roles ...models.Role) fiber.Handler {
		return middleware.Auth(d.Sessions, roles...)
	}
	admin := role(models.RoleAdmin)

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	api.Get("/health", adminH.Health)

	auth := api.Group("/auth")
	auth.Post("/register", authH.Register)
	auth.Post("/login", authH.Login)
	auth.Post("/logout", authH.Logout)
	auth.Get("/me", signedIn, authH.Me)
	api.Get("/agencies", signedIn, authH.Agencies)

	startups := api.Group("/startups")
	startups.Get("/", optional, startupH.List)
	startups.Post("/", role(models.RoleStartup), startupH.Create)
	startups.Get("/:id", optional, startupH.Get)
	startups.Put("/:id", role(models.RoleStartup), startupH.Update)
	startups.Delete("/:id", role(models.RoleStartup, models.RoleAdmin), startupH.Delete)
	startups.Patch("/:id/status", admin, startupH.Review)
	startups.Get("/:id/metrics", optional, startupH.Metrics)
	startups.Post("/:id/metrics", role(models.RoleStartup), startupH.RecordMetric)

	papers := api.Group("/papers")
	papers.Get("/", optional, paperH.List)
	papers.Post("/", role(models.RoleResearcher), paperH.Create)
	papers.Get("/:id", optional, paperH.Get)
	papers.Delete("/:id", role(models.RoleResearcher, models.RoleAdmin), paperH.Delete)
	papers.Patch("/:id/status", admin, paperH.Review)

	examiners := role(models.RoleAdmin, models.RoleIPProfessional)
	filings := api.Group("/filings")
	filings.Get("/", signedIn, filingH.List)
	filings.Get("/:id", signedIn, filingH.Get)
	filings.Delete("/:id", signedIn, filingH.Delete)
	filings.Patch("/:id/status", examiners, filingH.Review)
	filings.Post("/:id/ledger", admin, filingH.RetryLedger)
	filings.Post("/:id/similarity", examiners, filingH.Similarity)
	filings.Post("/:kind", role(models.RoleStartup, models.RoleResearcher), filingH.Create)

	funding := api.Group("/funding")
	funding.Get("/", signedIn, fundingH.List)
	funding.Post("/", role(models.RoleStartup), fundingH.Create)
	funding.Get("/:id", signedIn, fundingH.Get)
	funding.Patch("/:id/status", role(models.RoleFundingAgency, models.RoleAdmin), fundingH.Review)

	messages := api.Group("/messages", signedIn)
	messages.Get("/contacts", messageH.Contacts)
	messages.Get("/stream", messageH.Stream)
	messages.Get("/", messageH.List)
	messages.Post("/", messageH.Send)

	uploads := api.Group("/uploads", signedIn)
	uploads.Post("/", uploadH.Create)
	uploads.Get("/:id", uploadH.Get)

	api.Get("/admin/dashboard", admin, adminH.Dashboard)
}

// NotFound is the fallback for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return ErrorHandler(c, fiber.NewError(fiber.StatusNotFound, "[404] Resource Not Found"))
}

// ErrorHandler handles errors globally
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorType := "unknown"

	var fe *fiber.Error
	var ce *types.CustomError
	switch {
	case errors.As(err, &ce):
		code, message, errorType = ce.Code, ce.Message, ce.Type
	case errors.As(err, &fe):
		code, message = fe.Code, fe.Message
		if code == fiber.StatusNotFound {
			errorType = "not_found"
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
