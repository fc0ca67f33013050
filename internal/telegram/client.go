// Package telegram decouples the bot logic from the transport
// library. The interpreter talks to Client; the telebot adapter is
// the only code aware of telebot types on the sending side.
package telegram

import (
	"context"

	"inncheck/internal/domain"
)

// Client sends messages on behalf of the bot. All methods observe the
// context and must not produce side effects once it is canceled.
type Client interface {
	// SendText delivers a plain HTML-formatted message.
	SendText(ctx context.Context, to domain.Recipient, text string) error
	// SendWithButtons delivers a message with an inline button grid,
	// chunking buttons into rows of perRow.
	SendWithButtons(ctx context.Context, to domain.Recipient, text string, buttons []domain.CallbackButton, perRow int) error
	// RemoveButtons clears the button grid of a previously sent message.
	RemoveButtons(ctx context.Context, to domain.Recipient, messageID int) error
}
