package handlers

import (
	"bufio"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/innohub/internal/chat"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/services"
	"github.com/localnerve/innohub/internal/store"
	"github.com/localnerve/innohub/internal/utils"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// MessageHandler handles chat routes.
// Streams end when Shutdown is cancelled or the broker closes.
type MessageHandler struct {
	Store     *store.Store
	Broker    chat.Broker
	Heartbeat time.Duration
	Shutdown  context.Context
}

// Contacts handles GET /api/messages/contacts
// @Summary Conversation partners
// @Tags Messages
// @Produce json
// @Success 200 {object} utils.ListResponseStruct
// @Security CookieAuth
// @Router /messages/contacts [get]
func (h *MessageHandler) Contacts(c *fiber.Ctx) error {
	contacts, err := services.Contacts(c.UserContext(), h.Store, claims(c))
	if err != nil {
		return respondError(c, err, "messages.contacts")
	}
	return utils.ListResponse(c, contacts, "")
}

// List handles GET /api/messages
// @Summary Poll messages
// @Description Messages after a cursor, oldest first; with narrows to one conversation, otherwise every message you sent or received
// @Tags Messages
// @Produce json
// @Param with query string false "Other participant's user id"
// @Param after query string false "Last message id already seen"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} utils.ListResponseStruct
// @Security CookieAuth
// @Router /messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	p := page(c)
	var (
		items []models.Message
		err   error
	)
	if with := c.Query("with"); with != "" {
		items, err = services.Conversation(c.UserContext(), h.Store, claims(c), with, p)
	} else {
		items, err = services.Inbox(c.UserContext(), h.Store, claims(c), p)
	}
	if err != nil {
		return respondError(c, err, "messages.list")
	}

	next := p.After
	if len(items) > 0 {
		next = items[len(items)-1].ID
	}
	return utils.ListResponse(c, items, next)
}

// Send handles POST /api/messages
// @Summary Send a direct message
// @Tags Messages
// @Accept json
// @Produce json
// @Param body body services.MessageInput true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in services.MessageInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err, "messages.send")
	}
	msg, err := services.SendMessage(c.UserContext(), h.Store, h.Broker, claims(c), in)
	if err != nil {
		return respondError(c, err, "messages.send")
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// Stream handles GET /api/messages/stream
// @Summary Push stream of new messages
// @Description Server-sent events named "message" with the message id as event id. Resume with Last-Event-ID or after; without either only new messages are sent.
// @Tags Messages
// @Produce text/event-stream
// @Param after query string false "Last message id already seen"
// @Success 200 {string} string "event stream"
// @Security CookieAuth
// @Router /messages/stream [get]
func (h *MessageHandler) Stream(c *fiber.Ctx) error {
	actor := claims(c)
	after := c.Get("Last-Event-ID", c.Query("after"))

	base := h.Shutdown
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)

	// subscribe first so nothing published while the backlog loads is missed
	sub, err := h.Broker.Subscribe(ctx, actor.UserID)
	if err != nil {
		cancel()
		return respondError(c, err, "messages.stream")
	}

	var backlog []models.Message
	if after != "" {
		backlog, err = services.Backlog(c.UserContext(), h.Store, actor, after)
		if err != nil {
			sub.Close()
			cancel()
			return respondError(c, err, "messages.stream")
		}
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	userID := actor.UserID
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer sub.Close()

		err := chat.Pump(ctx, w, chat.NewCursor(after), backlog, sub, h.Heartbeat, func(models.Message) {
			services.CountStreamDelivery()
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			zap.L().Debug("chat stream ended", zap.String("user", userID), zap.Error(err))
		}
	}))
	return nil
}
