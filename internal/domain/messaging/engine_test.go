package messaging

import (
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T, name, phone string, paymentDay int) *client.Client {
	t.Helper()
	c, err := client.NewClient(name, phone, paymentDay)
	require.NoError(t, err)
	return c
}

func TestProcess(t *testing.T) {
	now := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

	t.Run("replaces the three placeholders", func(t *testing.T) {
		ana := mustClient(t, "Ana", "+54 11 5555-0001", 10)

		got := Process("Hola {nombre}, pagás el {dia_pago}, recordatorio desde el {plazo_inicio}", ana, now)

		assert.Equal(t, "Hola Ana, pagás el 10, recordatorio desde el 5", got)
	})

	t.Run("replaces every occurrence", func(t *testing.T) {
		ana := mustClient(t, "Ana", "", 10)

		got := Process("{nombre} {nombre} {nombre}", ana, now)

		assert.Equal(t, "Ana Ana Ana", got)
	})

	t.Run("leaves unknown placeholders verbatim", func(t *testing.T) {
		ana := mustClient(t, "Ana", "", 10)

		got := Process("Hola {nombre}, tu plan es {plan}", ana, now)

		assert.Equal(t, "Hola Ana, tu plan es {plan}", got)
	})

	t.Run("template without placeholders is unchanged", func(t *testing.T) {
		ana := mustClient(t, "Ana", "", 10)
		assert.Equal(t, "Feliz año!", Process("Feliz año!", ana, now))
	})

	t.Run("is referentially transparent", func(t *testing.T) {
		ana := mustClient(t, "Ana", "", 10)
		template := "Hola {nombre}, desde el {plazo_inicio}"

		first := Process(template, ana, now)
		second := Process(template, ana, now)

		assert.Equal(t, first, second)
	})
}

func TestReminderStartDay(t *testing.T) {
	now := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		paymentDay int
		want       int
	}{
		{"normal window", 10, 5},
		{"late month payment", 28, 23},
		{"early payment clamps to 1", 3, 1},
		{"payment on the 5th clamps to 1", 5, 1},
		{"payment on the 6th", 6, 1},
		{"payment on the 7th", 7, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReminderStartDay(tc.paymentDay, now))
		})
	}
}

func TestMonthLength(t *testing.T) {
	assert.Equal(t, 31, MonthLength(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, MonthLength(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, MonthLength(time.Date(2028, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, MonthLength(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)))
}
