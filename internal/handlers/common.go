// common.go
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
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/ledger"
	"github.com/localnerve/innohub/internal/middleware"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/types"
	"github.com/localnerve/innohub/internal/utils"
	"go.uber.org/zap"
)

// respondError maps service and store errors onto the error envelope.
// errorType names the failing operation for unexpected errors.
func respondError(c *fiber.Ctx, err error, errorType string) error {
	var verr *services.ValidationError
	var cerr *types.CustomError

	switch {
	case errors.As(err, &verr):
		return utils.ValidationErrorResponse(c, verr.Fields)
	case errors.As(err, &cerr):
		return utils.ErrorResponse(c, cerr.Message, cerr.Code, cerr.Type)
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, store.ErrStatusConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, "status.conflict")
	case errors.Is(err, store.ErrDuplicate):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, "duplicate")
	case errors.Is(err, services.ErrInvalidStatus):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "status.invalid")
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, "You may not modify this resource", fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.credentials")
	case errors.Is(err, services.ErrInvalidSession):
		return utils.ErrorResponse(c, "Invalid session", fiber.StatusUnauthorized, "auth.session")
	case errors.Is(err, services.ErrTooLarge):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusRequestEntityTooLarge, "upload.size")
	case errors.Is(err, services.ErrUnsupportedType):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnsupportedMediaType, "upload.type")
	case errors.Is(err, ledger.ErrNotConfigured):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusServiceUnavailable, "ledger.disabled")
	case errors.Is(err, ledger.ErrRejected):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, "ledger.rejected")
	case errors.Is(err, ledger.ErrFaulted):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, "ledger.faulted")
	case errors.Is(err, chat.ErrClosed):
		return utils.ErrorResponse(c, "Chat is shutting down", fiber.StatusServiceUnavailable, "chat.closed")
	case errors.Is(err, context.DeadlineExceeded):
		return utils.ErrorResponse(c, "Upstream call timed out", fiber.StatusGatewayTimeout, "timeout")
	}

	zap.L().Error("request failed",
		zap.String("type", errorType),
		zap.String("url", c.OriginalURL()),
		zap.Error(err))
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, errorType)
}

// claims returns the session claims; nil for anonymous requests on optional routes
func claims(c *fiber.Ctx) *services.Claims {
	return middleware.Claims(c)
}

// bind decodes the request body; failures are reported through respondError
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return types.NewError(fiber.StatusBadRequest, "validation.input", "Invalid input: %v", err)
	}
	return nil
}

// page reads the after and limit query parameters
func page(c *fiber.Ctx) services.Page {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return services.Page{After: c.Query("after"), Limit: limit}
}

func queryBool(c *fiber.Ctx, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
