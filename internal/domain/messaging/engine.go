package messaging

import (
	"strconv"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/client"
)

// Placeholders recognized by the substitution engine. Anything else in the
// template is left verbatim.
const (
	PlaceholderName          = "{nombre}"
	PlaceholderPaymentDay    = "{dia_pago}"
	PlaceholderReminderStart = "{plazo_inicio}"
)

// reminderWindowDays is how many days before the payment day the payment
// reminder window opens.
const reminderWindowDays = 5

// ReminderStartDay computes the day of the current month on which the
// payment reminder window opens: paymentDay minus the window, clamped to 1.
func ReminderStartDay(paymentDay int, now time.Time) int {
	day := paymentDay - reminderWindowDays
	if day < 1 {
		day = 1
	}
	lastDay := MonthLength(now)
	if day > lastDay {
		day = lastDay
	}
	return day
}

// MonthLength returns the number of days in the month containing t
func MonthLength(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// Process expands a template for one client. Replacement is global literal
// substring substitution; the function is pure and safe to call once per
// recipient in a batch loop.
func Process(template string, c *client.Client, now time.Time) string {
	out := strings.ReplaceAll(template, PlaceholderName, c.Name)
	out = strings.ReplaceAll(out, PlaceholderPaymentDay, strconv.Itoa(c.PaymentDay))
	out = strings.ReplaceAll(out, PlaceholderReminderStart, strconv.Itoa(ReminderStartDay(c.PaymentDay, now)))
	return out
}
