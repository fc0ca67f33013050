package handler

import (
	"context"
	"fmt"

	"inncheck/internal/domain"
	"inncheck/internal/messages"
	"inncheck/internal/metrics"
	"inncheck/internal/service"
	"inncheck/internal/telegram"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires telebot updates through the router and interpreter.
// It owns the per-update error boundary: any error or panic escaping
// the pipeline is logged with a correlation id and reported to the
// operator notification chat; the failing update is dropped.
type Handler struct {
	bot           *tele.Bot
	router        *service.Router
	interpreter   *Interpreter
	telegram      telegram.Client
	notifications domain.Recipient
	logger        *zap.Logger

	// baseCtx is canceled on shutdown; every update inherits it.
	baseCtx context.Context
}

// NewHandler creates a handler.
func NewHandler(
	baseCtx context.Context,
	bot *tele.Bot,
	router *service.Router,
	interpreter *Interpreter,
	client telegram.Client,
	notifications domain.Recipient,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		router:        router,
		interpreter:   interpreter,
		telegram:      client,
		notifications: notifications,
		logger:        logger,
		baseCtx:       baseCtx,
	}
}

// RegisterHandlers routes every update shape through the same
// pipeline; classification happens in the router, not per endpoint.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.process)
	h.bot.Handle("/help", h.process)
	h.bot.Handle("/mode", h.process)
	h.bot.Handle("/check", h.process)
	h.bot.Handle(tele.OnText, h.process)
	h.bot.Handle(tele.OnCallback, h.process)
}

// SetupCommands registers the command menu with Telegram.
func (h *Handler) SetupCommands() error {
	return h.bot.SetCommands([]tele.Command{
		{Text: "start", Description: "Начать работу с ботом"},
		{Text: "mode", Description: "Выбрать режим"},
		{Text: "help", Description: "Помощь"},
		{Text: "check", Description: "Проверить компанию по ИНН"},
	})
}

func (h *Handler) process(c tele.Context) error {
	ctx := h.baseCtx

	defer func() {
		if r := recover(); r != nil {
			metrics.UpdatesTotal.WithLabelValues("panic").Inc()
			h.notifyError(ctx, fmt.Errorf("panic during update processing: %v", r))
		}
	}()

	cmd, err := h.router.Classify(ctx, c.Update())
	if err != nil {
		metrics.UpdatesTotal.WithLabelValues("error").Inc()
		h.notifyError(ctx, err)
		return nil
	}

	if err := h.interpreter.Execute(ctx, cmd); err != nil {
		metrics.UpdatesTotal.WithLabelValues("error").Inc()
		h.notifyError(ctx, err)
		return nil
	}

	metrics.UpdatesTotal.WithLabelValues("ok").Inc()

	if c.Callback() != nil {
		return c.Respond()
	}
	return nil
}

// notifyError logs the failure under a fresh correlation id and posts
// the id to the operator chat so the log entry can be found.
func (h *Handler) notifyError(ctx context.Context, err error) {
	id := uuid.New()

	h.logger.Error("unhandled error during update processing",
		zap.String("correlation_id", id.String()),
		zap.Error(err),
	)

	msg := fmt.Sprintf(messages.ErrorTemplate, id)
	if sendErr := h.telegram.SendText(ctx, h.notifications, msg); sendErr != nil {
		h.logger.Error("failed to notify operators", zap.Error(sendErr))
	}
}
