package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonDigits       = regexp.MustCompile(`\D`)
	dominicanPrefix = regexp.MustCompile(`^(809|829|849)`)
)

var (
	statusSubjects = map[string]string{
		"confirmed": "✅ Cita Confirmada",
		"completed": "🌟 Gracias por tu visita",
		"cancelled": "❌ Cita Cancelada",
	}
	statusSentences = map[string]string{
		"confirmed": "ha sido confirmada",
		"completed": "ha sido completada",
		"cancelled": "ha sido cancelada",
	}
)

// FormatPhone keeps the digits of phone. Ten-digit Dominican numbers get the
// country code 1 prepended.
func FormatPhone(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")

	if len(cleaned) == 10 && dominicanPrefix.MatchString(cleaned) {
		cleaned = "1" + cleaned
	}

	return cleaned
}

// Link builds a wa.me link that opens a chat with text prefilled.
func Link(phone, text string) string {
	link := "https://wa.me/" + FormatPhone(phone)
	if text == "" {
		return link
	}

	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// FormatAmount renders money with thousands separators and at most two
// decimals, dropping a zero fraction: 1500 -> "1,500", 99.5 -> "99.5".
func FormatAmount(amount decimal.Decimal) string {
	text := amount.Round(2).String()

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	whole, fraction, _ := strings.Cut(text, ".")

	var grouped strings.Builder

	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}

		grouped.WriteRune(digit)
	}

	if fraction != "" {
		return sign + grouped.String() + "." + fraction
	}

	return sign + grouped.String()
}

func (s Summary) services() string {
	if len(s.Services) == 0 {
		return defaultServiceName
	}

	return strings.Join(s.Services, ", ")
}

// ConfirmationText is the WhatsApp message sent after a reservation is made.
func ConfirmationText(s Summary) string {
	return fmt.Sprintf(`¡Gracias por reservar con nosotros! 🎉

Tu cita en *%s* ha sido confirmada:

📅 Fecha: %s
⏰ Hora: %s
💇 Servicio(s): %s
💰 Total: RD$%s

Si necesitas cancelar o reprogramar, contáctanos.

_%s_`, s.shop(), s.Date, s.Time, s.services(), s.Total, s.shop())
}

// ConfirmationEmail returns subject and HTML body of the booking e-mail.
func ConfirmationEmail(s Summary) (string, string) {
	subject := "✅ Cita Confirmada - " + s.shop()

	body := fmt.Sprintf(`<h2>¡Tu cita ha sido confirmada!</h2>
<p>Hola %s,</p>
<p>Tu cita en <strong>%s</strong> está confirmada:</p>
<ul>
	<li><strong>Fecha:</strong> %s</li>
	<li><strong>Hora:</strong> %s</li>
	<li><strong>Servicio(s):</strong> %s</li>
	<li><strong>Total:</strong> RD$%s</li>
</ul>
<p>¡Te esperamos!</p>
<p><em>%s</em></p>`, s.customer(), s.shop(), s.Date, s.Time, s.services(), s.Total, s.shop())

	return subject, body
}

// StatusText is the WhatsApp message for a status change.
func StatusText(s Summary, status string) string {
	sentence, ok := statusSentences[status]
	if !ok {
		sentence = "ha cambiado a " + status
	}

	return fmt.Sprintf(`¡Hola %s! 👋

Tu cita en *%s* del %s a las %s %s.

_%s_`, s.customer(), s.shop(), s.Date, s.Time, sentence, s.shop())
}

// StatusEmail returns subject and HTML body for a status change.
func StatusEmail(s Summary, status string) (string, string) {
	subject, ok := statusSubjects[status]
	if !ok {
		subject = "Actualización de Cita"
	}

	sentence, ok := statusSentences[status]
	if !ok {
		sentence = "ha cambiado a " + status
	}

	body := fmt.Sprintf(`<h2>Actualización de tu cita</h2>
<p>Hola %s,</p>
<p>Tu cita en <strong>%s</strong> del %s a las %s %s.</p>
<ul>
	<li><strong>Servicio(s):</strong> %s</li>
</ul>
<p><em>%s</em></p>`, s.customer(), s.shop(), s.Date, s.Time, sentence, s.services(), s.shop())

	return subject + " - " + s.shop(), body
}

// RescheduleText is the WhatsApp message sent when a reservation moves.
func RescheduleText(s Summary) string {
	return fmt.Sprintf(`¡Hola %s! 👋

Tu cita en *%s* fue reprogramada:

📅 Fecha: %s
⏰ Hora: %s
💇 Servicio(s): %s

¡Te esperamos! ✨

_%s_`, s.customer(), s.shop(), s.Date, s.Time, s.services(), s.shop())
}

// RescheduleEmail returns subject and HTML body for a rescheduled reservation.
func RescheduleEmail(s Summary) (string, string) {
	subject := "📅 Cita Reprogramada - " + s.shop()

	body := fmt.Sprintf(`<h2>Tu cita fue reprogramada</h2>
<p>Hola %s,</p>
<p>Tu cita en <strong>%s</strong> ahora es:</p>
<ul>
	<li><strong>Fecha:</strong> %s</li>
	<li><strong>Hora:</strong> %s</li>
	<li><strong>Servicio(s):</strong> %s</li>
</ul>
<p>Si necesitas otro cambio, contáctanos con anticipación.</p>
<p><em>%s</em></p>`, s.customer(), s.shop(), s.Date, s.Time, s.services(), s.shop())

	return subject, body
}
