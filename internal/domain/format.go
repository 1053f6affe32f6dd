package domain

import (
	"math"
	"strconv"
)

// rub форматирует сумму для сводки: без хвостовых нулей, с символом рубля.
func rub(v float64) string {
	return num(v) + " ₽"
}

// num — число без хвостовых нулей, округлённое до копеек.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
