package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/servusapp/servus-api/internal/domain/order"
)

// As listagens usam o dia 31 fixo como teto: em meses mais curtos não existe
// data válida acima do fim real do mês, então o recorte continua correto.
func TestMonthRange_TetoFixoNoDia31(t *testing.T) {
	start, end := order.MonthRange(2026, time.February)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-31", end)

	start, end = order.MonthRange(2026, time.December)
	assert.Equal(t, "2026-12-01", start)
	assert.Equal(t, "2026-12-31", end)
}

// Datas dentro do mês ordenam entre as pontas do intervalo (comparação de
// strings, como no banco).
func TestMonthRange_ComparacaoDeStrings(t *testing.T) {
	start, end := order.MonthRange(2026, time.February)
	date := "2026-02-28"
	assert.True(t, date >= start && date <= end)

	fora := "2026-03-01"
	assert.False(t, fora >= start && fora <= end)
}

// A checagem de plano usa o último dia real do mês.
func TestCurrentMonthRange_UltimoDiaReal(t *testing.T) {
	today := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	start, end := order.CurrentMonthRange(today)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-28", end)
}

func TestCurrentMonthRange_Bissexto(t *testing.T) {
	today := time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)
	start, end := order.CurrentMonthRange(today)
	assert.Equal(t, "2028-02-01", start)
	assert.Equal(t, "2028-02-29", end)
}

func TestCurrentMonthRange_MesDe31Dias(t *testing.T) {
	today := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	start, end := order.CurrentMonthRange(today)
	assert.Equal(t, "2026-08-01", start)
	assert.Equal(t, "2026-08-31", end)
}
