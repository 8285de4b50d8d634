package view

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.Korean)

// FormatPrice - 원화 표기. KRW는 소수점이 없으므로 반올림 후 천 단위로 구분한다.
func FormatPrice(v float64) string {
	n := int64(math.Round(v))
	return pricePrinter.Sprintf("₩%v", number.Decimal(n))
}

// FormatDate - 등록일 표기. 예: 2025년 3월 1일
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
