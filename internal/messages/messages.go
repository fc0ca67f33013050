// Package messages holds every user-facing text of the bot.
// Long texts are embedded from resources/, short ones are constants.
package messages

import (
	"embed"
	"strings"

	"inncheck/internal/domain"
)

//go:embed resources
var resources embed.FS

// Texts loaded from the embedded resources, with the shared footer
// already appended where the original screens carry one.
var (
	Start         = load("start.html") + "\n\n" + load("footer.html")
	Help          = load("help.html") + "\n\n" + load("footer.html")
	Bug           = load("bug.html") + "\n\n" + load("footer.html")
	ModeSelection = load("mode.html")
)

const (
	InvalidTin      = "Неправильный ИНН."
	CompanyNotFound = "Компания с таким ИНН не найдена."

	UnderDevelopment = "Этот режим пока в разработке.\n\nБольше информации в нашем <a href=\"https://github.com/hugin-and-munin\">GitHub</a> и <a href=\"https://t.me/it_hugin_and_munin\">Telegram.</a>"

	// ErrorTemplate is sent to the operator chat; the placeholder is
	// the correlation id of the logged failure.
	ErrorTemplate = "Внимание, баклажаны 🍆🍆🍆\n\nПроверьте логи.\n\n<code>%s</code>"
)

// Mode captions shown on the selection buttons.
const (
	CaptionGeneral   = "ℹ️ Oбщая информация"
	CaptionLegalInfo = "⚖️ Юридическая информация"
	CaptionReviews   = "🗣️ Отзывы (в разработке)"
	CaptionSalaries  = "💰 Зарплаты (в разработке)"
)

// ModeCaption returns the button caption for a mode.
func ModeCaption(m domain.Mode) string {
	switch m {
	case domain.ModeGeneral:
		return CaptionGeneral
	case domain.ModeLegalInfo:
		return CaptionLegalInfo
	case domain.ModeReviews:
		return CaptionReviews
	case domain.ModeSalaries:
		return CaptionSalaries
	default:
		panic("unsupported mode " + m.String())
	}
}

// ModeConfirmed returns the acknowledgement sent after a mode change.
func ModeConfirmed(m domain.Mode) string {
	return "Вы выбрали режим: <b>" + ModeCaption(m) + "</b>"
}

func load(name string) string {
	b, err := resources.ReadFile("resources/" + name)
	if err != nil {
		panic(err)
	}
	return strings.TrimRight(string(b), "\n")
}
