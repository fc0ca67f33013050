package telegram

import (
	"context"
	"strconv"

	"inncheck/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// TelebotAdapter implements Client on top of gopkg.in/telebot.v3.
type TelebotAdapter struct {
	bot *tele.Bot
}

// NewTelebotAdapter wraps an initialized bot.
func NewTelebotAdapter(bot *tele.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: bot}
}

// SendText delivers a plain HTML-formatted message.
func (a *TelebotAdapter) SendText(ctx context.Context, to domain.Recipient, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := a.bot.Send(recipient(to), text, sendOptions(to))
	return err
}

// SendWithButtons delivers a message with an inline button grid.
func (a *TelebotAdapter) SendWithButtons(ctx context.Context, to domain.Recipient, text string, buttons []domain.CallbackButton, perRow int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := sendOptions(to)
	opts.ReplyMarkup = &tele.ReplyMarkup{InlineKeyboard: chunk(buttons, perRow)}
	_, err := a.bot.Send(recipient(to), text, opts)
	return err
}

// RemoveButtons clears the inline keyboard of a previously sent message.
func (a *TelebotAdapter) RemoveButtons(ctx context.Context, to domain.Recipient, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID(to),
	}
	_, err := a.bot.EditReplyMarkup(msg, nil)
	return err
}

// chunk lays buttons out into rows of the requested width. Buttons
// are sent without a telebot unique so the payload arrives verbatim.
func chunk(buttons []domain.CallbackButton, perRow int) [][]tele.InlineButton {
	if perRow < 1 {
		perRow = 1
	}
	var rows [][]tele.InlineButton
	for i := 0; i < len(buttons); i += perRow {
		end := i + perRow
		if end > len(buttons) {
			end = len(buttons)
		}
		row := make([]tele.InlineButton, 0, end-i)
		for _, b := range buttons[i:end] {
			row = append(row, tele.InlineButton{Text: b.Caption, Data: b.Payload})
		}
		rows = append(rows, row)
	}
	return rows
}

func recipient(to domain.Recipient) tele.Recipient {
	switch r := to.(type) {
	case domain.User:
		return &tele.User{ID: r.ID}
	case domain.Chat:
		return &tele.Chat{ID: r.ID}
	default:
		panic("unsupported recipient")
	}
}

func chatID(to domain.Recipient) int64 {
	switch r := to.(type) {
	case domain.User:
		return r.ID
	case domain.Chat:
		return r.ID
	default:
		panic("unsupported recipient")
	}
}

func sendOptions(to domain.Recipient) *tele.SendOptions {
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
	if chat, ok := to.(domain.Chat); ok {
		opts.ThreadID = chat.TopicID
		if chat.ReplyTo != 0 {
			opts.ReplyTo = &tele.Message{ID: chat.ReplyTo, Chat: &tele.Chat{ID: chat.ID}}
		}
	}
	return opts
}
