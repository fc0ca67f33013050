package service

import (
	"context"
	"fmt"
	"strings"

	"inncheck/internal/domain"
	"inncheck/internal/format"
	"inncheck/internal/messages"
	"inncheck/internal/payload"
	"inncheck/internal/tin"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ModeStore is the per-user mode association. Implementations must
// support concurrent atomic per-key access.
type ModeStore interface {
	Get(userID int64) (domain.Mode, bool)
	Set(userID int64, mode domain.Mode)
}

// ReportProvider is the remote report source. A nil report with a nil
// error means "no such company".
type ReportProvider interface {
	GeneralInfo(ctx context.Context, tin int64) (*domain.GeneralInfo, error)
	LegalEntityInfo(ctx context.Context, tin int64) (*domain.LegalEntityInfo, error)
}

// Router turns an inbound Telegram update into a Command. It is the
// only place that decides what the bot does; executing the decision
// is the interpreter's job.
type Router struct {
	modes    ModeStore
	provider ReportProvider
	tins     *tin.Parser
	logger   *zap.Logger
}

// NewRouter creates a router.
func NewRouter(modes ModeStore, provider ReportProvider, tins *tin.Parser, logger *zap.Logger) *Router {
	return &Router{
		modes:    modes,
		provider: provider,
		tins:     tins,
		logger:   logger,
	}
}

// Classify maps an update to a Command. User-facing conditions are
// encoded as Command variants; a non-nil error means a violated
// internal invariant and is handled once at the update boundary.
func (r *Router) Classify(ctx context.Context, upd tele.Update) (domain.Command, error) {
	var (
		userID    int64
		chatID    int64
		messageID int
		topicID   int
	)

	switch {
	case upd.Callback != nil && upd.Callback.Sender != nil && upd.Callback.Message != nil:
		userID = upd.Callback.Sender.ID
		chatID = upd.Callback.Message.Chat.ID
		messageID = upd.Callback.Message.ID
		topicID = upd.Callback.Message.ThreadID
	case upd.Message != nil && upd.Message.Sender != nil && upd.Message.Chat != nil:
		userID = upd.Message.Sender.ID
		chatID = upd.Message.Chat.ID
		messageID = upd.Message.ID
		topicID = upd.Message.ThreadID
	default:
		return domain.NoAction{}, nil
	}

	if userID == 0 || chatID == 0 {
		return domain.NoAction{}, nil
	}

	// Same chat and user ids mean a private conversation.
	var to domain.Recipient
	if chatID == userID {
		to = domain.User{ID: userID}
	} else {
		to = domain.Chat{ID: chatID, TopicID: topicID, ReplyTo: messageID}
	}

	var content string
	if upd.Callback != nil {
		content = upd.Callback.Data
	} else {
		content = upd.Message.Text
	}

	if content == "" {
		r.logger.Error("update without content", zap.Any("update", upd))
		return domain.SendNoContent{To: to}, nil
	}

	if upd.Callback != nil {
		switch {
		case strings.HasPrefix(content, "mode-"):
			return r.changeMode(to, content, messageID, userID)
		case strings.HasPrefix(content, "check-"):
			return r.report(ctx, to, userID, content)
		}
		return domain.NoAction{}, nil
	}

	switch {
	case strings.HasPrefix(content, "/start"):
		return domain.SendGreetings{To: to}, nil
	case strings.HasPrefix(content, "/help"):
		return domain.SendHelp{To: to}, nil
	case strings.HasPrefix(content, "/mode"):
		return r.modeSelection(to, userID), nil
	case strings.HasPrefix(content, "/check"):
		return r.report(ctx, to, userID, content)
	}
	return domain.NoAction{}, nil
}

// changeMode handles a mode-<mode>-<userID> callback. A payload built
// for another user is a spoofed or stale button and is ignored.
func (r *Router) changeMode(to domain.Recipient, content string, messageID int, userID int64) (domain.Command, error) {
	p, err := payload.Parse(content)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return domain.NoAction{}, nil
	}

	r.modes.Set(userID, p.Mode)

	return domain.SendModeConfirmed{
		To:                to,
		Mode:              p.Mode,
		OriginalMessageID: messageID,
	}, nil
}

func (r *Router) modeSelection(to domain.Recipient, userID int64) domain.SendModeSelection {
	modes := domain.Modes()
	buttons := make([]domain.CallbackButton, 0, len(modes))
	for _, m := range modes {
		buttons = append(buttons, domain.CallbackButton{
			Caption: messages.ModeCaption(m),
			Payload: payload.ForModeChange(m, userID),
		})
	}
	return domain.SendModeSelection{To: to, Buttons: buttons, PerRow: 1}
}

// report handles both /check commands and check- drill-down callbacks.
func (r *Router) report(ctx context.Context, to domain.Recipient, userID int64, content string) (domain.Command, error) {
	// A user without a selected mode is asked to select one first;
	// the original request is discarded.
	mode, ok := r.modes.Get(userID)
	if !ok {
		return r.modeSelection(to, userID), nil
	}

	companyTin, ok := r.extractTin(content)
	if !ok {
		return domain.SendTinIsInvalid{To: to}, nil
	}

	switch mode {
	case domain.ModeGeneral:
		info, err := r.provider.GeneralInfo(ctx, companyTin)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return domain.SendCompanyNotFound{To: to}, nil
		}
		return domain.SendGeneralReport{To: to, Text: format.GeneralReport(info)}, nil

	case domain.ModeLegalInfo:
		info, err := r.provider.LegalEntityInfo(ctx, companyTin)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return domain.SendCompanyNotFound{To: to}, nil
		}
		return domain.SendLegalEntityReport{
			To:      to,
			Text:    format.LegalEntityReport(info),
			Buttons: drillDownButtons(info.BasicInfo.Shareholders, userID),
			PerRow:  1,
		}, nil

	case domain.ModeReviews:
		return domain.SendReviewsReport{To: to, Text: messages.UnderDevelopment}, nil

	case domain.ModeSalaries:
		return domain.SendSalariesReport{To: to, Text: messages.UnderDevelopment}, nil

	default:
		return nil, fmt.Errorf("unsupported mode %v", mode)
	}
}

// extractTin picks the TIN out of a structured check- payload or a
// free-form /check command.
func (r *Router) extractTin(content string) (int64, bool) {
	if p, err := payload.Parse(content); err == nil && p.Kind == payload.KindCheck {
		return p.Tin, tin.Valid(p.Tin)
	}
	return r.tins.TryParse(content)
}

// drillDownButtons builds one button per domestic company
// shareholder. Individuals and foreign entities have no checkable TIN.
func drillDownButtons(shareholders []domain.Shareholder, userID int64) []domain.CallbackButton {
	var buttons []domain.CallbackButton
	for _, sh := range shareholders {
		if sh.Type != domain.EntityCompany || sh.Tin <= 0 {
			continue
		}
		buttons = append(buttons, domain.CallbackButton{
			Caption: sh.Name,
			Payload: payload.ForCheck(userID, sh.Tin),
		})
	}
	return buttons
}
