// Package format renders provider reports into Telegram HTML.
// Rendering is deterministic and side-effect free.
package format

import (
	"fmt"
	"strings"
	"time"

	"inncheck/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are formatted the Russian way: groups of three separated
// by non-breaking spaces, comma as the decimal mark.
var (
	ru      = message.NewPrinter(language.Russian)
	ruTitle = cases.Title(language.Russian)
)

// GeneralReport renders the short report shape.
func GeneralReport(r *domain.GeneralInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n\n", r.Name)
	b.WriteString("<b>ℹ️ Основная информация</b>\n\n")
	fmt.Fprintf(&b, "ИНН: <code>%d</code>\n", r.Tin)
	fmt.Fprintf(&b, "Дата регистрации: %s\n", incorporationDate(r.IncorporationDate))
	fmt.Fprintf(&b, "Уставный капитал: %s ₽\n", groupInt(r.AuthorizedCapital))
	writeEmployees(&b, r.EmployeesNumber)
	fmt.Fprintf(&b, "📍 <a href=\"https://yandex.com/maps?text=%s\">%s</a>\n", mapQuery(r.Address), r.Address)

	if credited(r.Accreditation) {
		b.WriteString("✅ Аккредитация Минцифры\n")
	}
	if r.Profit > 0 {
		fmt.Fprintf(&b, "Прибыль за %d год: %s ₽\n", r.Year, groupInt(r.Profit))
	} else {
		fmt.Fprintf(&b, "⚠️ Убыток за %d год: %s ₽\n", r.Year, groupInt(r.Profit))
	}

	if r.Status != domain.StatusActive || !credited(r.Accreditation) || r.SalaryDelays {
		b.WriteString("\n<b>⚠️ Негативные сведения</b>\n\n")
		if !credited(r.Accreditation) {
			b.WriteString("❗️Нет аккредитации Минцифры\n")
		}
		if line, ok := negativeStatusLine(r.Status); ok {
			b.WriteString(line + "\n")
		}
		if r.SalaryDelays {
			b.WriteString("❗️Задерживают зарплату\n")
		}
	}

	return b.String()
}

// LegalEntityReport renders the extended report shape.
func LegalEntityReport(r *domain.LegalEntityInfo) string {
	var b strings.Builder

	basic := r.BasicInfo
	finance := r.FinanceInfo
	proceedings := r.ProceedingsInfo

	fmt.Fprintf(&b, "<b>%s</b>\n\n", basic.Name)
	b.WriteString("<b>⚖️ Юридическая информация</b>\n\n")
	fmt.Fprintf(&b, "ИНН: <code>%d</code>\n", basic.Tin)
	fmt.Fprintf(&b, "Дата регистрации: %s\n", incorporationDate(basic.IncorporationDate))
	fmt.Fprintf(&b, "Уставный капитал: %s ₽\n", groupInt(basic.AuthorizedCapital))
	writeEmployees(&b, basic.EmployeesNumber)
	fmt.Fprintf(&b, "Адрес: <a href=\"https://yandex.com/maps?text=%s\">%s</a>\n", mapQuery(basic.Address), basic.Address)
	fmt.Fprintf(&b, "Статус: %s\n\n", statusLine(basic.Status))

	b.WriteString("<b>👤 Руководитель</b>\n\n")
	fmt.Fprintf(&b, "Должность: %s\n", titleCase(basic.Manager.Position))
	fmt.Fprintf(&b, "Имя: %s\n", titleCase(basic.Manager.Name))
	fmt.Fprintf(&b, "ИНН: <code>%d</code>\n\n", basic.Manager.Tin)

	b.WriteString("<b>💼 Учредители</b>\n\n")
	for _, sh := range basic.Shareholders {
		fmt.Fprintf(&b, "%s\n", sh.Name)
		if sh.Tin > 0 {
			fmt.Fprintf(&b, "ИНН: <code>%d</code>\n", sh.Tin)
		} else {
			b.WriteString("ИНН: отсутствует (иностранное юрлицо)\n")
		}
		fmt.Fprintf(&b, "Доля: %s ₽ (%s)\n\n", groupInt(sh.Share), groupFloat(sh.Size))
	}

	fmt.Fprintf(&b, "<b>📈 Финансовая информация за %d год</b>\n\n", finance.Year)
	fmt.Fprintf(&b, "Доходы: %s ₽\n", groupInt(finance.Income))
	if finance.Profit > 0 {
		fmt.Fprintf(&b, "Прибыль: %s ₽\n", groupInt(finance.Profit))
	} else {
		fmt.Fprintf(&b, "⚠️ Убыток: %s ₽\n", groupInt(finance.Profit))
	}
	fmt.Fprintf(&b, "Дебиторская задолженность: %s ₽\n", groupInt(finance.AccountsReceivable))
	fmt.Fprintf(&b, "Капитал и резервы: %s ₽\n", groupInt(finance.CapitalAndReserves))
	fmt.Fprintf(&b, "Долгосрочные обязательства: %s ₽\n", groupInt(finance.LongTermLiabilities))
	fmt.Fprintf(&b, "Краткосрочные обязательства: %s ₽\n", groupInt(finance.CurrentLiabilities))
	fmt.Fprintf(&b, "Платежи на оплату труда работников: %s ₽\n", groupInt(finance.PaidSalary))

	if proceedings.Count > 0 {
		fmt.Fprintf(&b, "⚠️ Есть долг по зарплате перед сотрудниками: %s\n", groupFloat(proceedings.Amount))
	}

	return b.String()
}

func writeEmployees(b *strings.Builder, n int64) {
	if n > 0 {
		fmt.Fprintf(b, "Количество сотрудников: %s\n", groupInt(n))
	} else {
		b.WriteString("Количество сотрудников: нет данных\n")
	}
}

func incorporationDate(unix int64) string {
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}

// mapQuery makes an address usable inside a map-service URL.
func mapQuery(address string) string {
	return strings.ReplaceAll(address, " ", ".")
}

func titleCase(s string) string {
	return ruTitle.String(strings.ToLower(s))
}

func groupInt(n int64) string {
	return ru.Sprintf("%d", n)
}

func groupFloat(f float64) string {
	return ru.Sprintf("%.2f", f)
}

func credited(a domain.AccreditationState) bool {
	switch a {
	case domain.AccreditationCredited:
		return true
	case domain.AccreditationUnknown, domain.AccreditationNotCredited:
		return false
	default:
		panic(fmt.Sprintf("unsupported accreditation state %d", a))
	}
}

func statusLine(s domain.LegalEntityStatus) string {
	if s == domain.StatusActive {
		return "Действующая компания"
	}
	line, _ := negativeStatusLine(s)
	return line
}

func negativeStatusLine(s domain.LegalEntityStatus) (string, bool) {
	switch s {
	case domain.StatusActive:
		return "", false
	case domain.StatusBankruptcy:
		return "❗️Компания в процессе банкротства", true
	case domain.StatusInReorganization:
		return "❗️Компания в процессе реорганизации", true
	case domain.StatusInTermination:
		return "❗️Компания в процессе ликвидации", true
	case domain.StatusTerminated:
		return "❗️Компания ликвидирована", true
	default:
		panic(fmt.Sprintf("unsupported legal entity status %d", s))
	}
}
