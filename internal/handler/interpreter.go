package handler

import (
	"context"
	"fmt"

	"inncheck/internal/domain"
	"inncheck/internal/messages"
	"inncheck/internal/metrics"
	"inncheck/internal/telegram"

	"go.uber.org/zap"
)

// Interpreter executes Commands against the chat transport. It holds
// no state and performs exactly the side effects a Command describes.
type Interpreter struct {
	telegram telegram.Client
	logger   *zap.Logger
}

// NewInterpreter creates an interpreter.
func NewInterpreter(client telegram.Client, logger *zap.Logger) *Interpreter {
	return &Interpreter{telegram: client, logger: logger}
}

// Execute performs the transport calls for one Command.
func (i *Interpreter) Execute(ctx context.Context, cmd domain.Command) error {
	metrics.CommandsTotal.WithLabelValues(commandName(cmd)).Inc()

	switch c := cmd.(type) {
	case domain.NoAction:
		return nil
	case domain.SendGreetings:
		return i.telegram.SendText(ctx, c.To, messages.Start)
	case domain.SendHelp:
		return i.telegram.SendText(ctx, c.To, messages.Help)
	case domain.SendModeSelection:
		return i.telegram.SendWithButtons(ctx, c.To, messages.ModeSelection, c.Buttons, c.PerRow)
	case domain.SendGeneralReport:
		return i.telegram.SendText(ctx, c.To, c.Text)
	case domain.SendLegalEntityReport:
		return i.telegram.SendWithButtons(ctx, c.To, c.Text, c.Buttons, c.PerRow)
	case domain.SendReviewsReport:
		return i.telegram.SendText(ctx, c.To, c.Text)
	case domain.SendSalariesReport:
		return i.telegram.SendText(ctx, c.To, c.Text)
	case domain.SendModeConfirmed:
		if err := i.telegram.RemoveButtons(ctx, c.To, c.OriginalMessageID); err != nil {
			return err
		}
		return i.telegram.SendText(ctx, c.To, messages.ModeConfirmed(c.Mode))
	case domain.SendTinIsInvalid:
		return i.telegram.SendText(ctx, c.To, messages.InvalidTin)
	case domain.SendCompanyNotFound:
		return i.telegram.SendText(ctx, c.To, messages.CompanyNotFound)
	case domain.SendNoContent:
		return i.telegram.SendText(ctx, c.To, messages.Bug)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func commandName(cmd domain.Command) string {
	switch cmd.(type) {
	case domain.NoAction:
		return "no_action"
	case domain.SendGreetings:
		return "greetings"
	case domain.SendHelp:
		return "help"
	case domain.SendModeSelection:
		return "mode_selection"
	case domain.SendGeneralReport:
		return "general_report"
	case domain.SendLegalEntityReport:
		return "legal_entity_report"
	case domain.SendReviewsReport:
		return "reviews_report"
	case domain.SendSalariesReport:
		return "salaries_report"
	case domain.SendModeConfirmed:
		return "mode_confirmed"
	case domain.SendTinIsInvalid:
		return "tin_invalid"
	case domain.SendCompanyNotFound:
		return "company_not_found"
	case domain.SendNoContent:
		return "no_content"
	default:
		return "unknown"
	}
}
