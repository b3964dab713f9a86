package order

import (
	"fmt"
	"time"
)

// MonthRange devolve o intervalo inclusivo de datas (strings YYYY-MM-DD) usado
// nas listagens financeiras do mês. O limite superior é o dia 31 fixo: em meses
// mais curtos isso só sobra espaço no fim do intervalo — nenhuma data válida
// ordena acima do próprio fim do mês, então a comparação de strings permanece
// correta.
func MonthRange(year int, month time.Month) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, int(month))
	end = fmt.Sprintf("%04d-%02d-31", year, int(month))
	return start, end
}

// CurrentMonthRange devolve o intervalo inclusivo do mês corrente de `today`
// com o último dia real do mês, usado pela checagem de limite do plano.
func CurrentMonthRange(today time.Time) (start, end string) {
	year, month, _ := today.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}
