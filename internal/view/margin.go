package view

import (
	"fmt"
	"math"
)

// MaxMarginRate - 마진율 상한. DB 컬럼 자릿수(numeric(5,2))에 맞춘 값.
const MaxMarginRate = 999.99

// MarginRate - 구입가와 판매가로 마진율(%)을 계산한다.
// 두 값이 모두 양수일 때만 다시 계산하고, 아니면 현재 값을 그대로 둔다.
// 결과는 999.99로 제한한 뒤 소수점 둘째 자리로 반올림한다.
func MarginRate(purchase, sale, current float64) float64 {
	if purchase <= 0 || sale <= 0 {
		return current
	}
	margin := (sale - purchase) / purchase * 100
	if margin > MaxMarginRate {
		margin = MaxMarginRate
	}
	return math.Round(margin*100) / 100
}

// MarginAmount - 마진액. 판매가에서 구입가를 뺀 금액.
func MarginAmount(sale, purchase float64) float64 {
	return sale - purchase
}

// FormatMarginRate - 화면 표기용. 항상 소수점 두 자리.
func FormatMarginRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate)
}
