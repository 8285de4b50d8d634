package view

import (
	"sort"
	"strings"

	"jaego-backend/internal/models"
)

// Filter - 제품명 부분 일치(대소문자 무시)와 구매처 일치를 모두 만족하는 제품만 남긴다.
// 검색어가 비어 있으면 이름 조건은 통과, 구매처가 비어 있으면 구매처 조건은 통과.
func Filter(products []models.Product, search, supplier string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if supplier != "" && (p.Supplier == nil || *p.Supplier != supplier) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SupplierOptions - 필터 전 전체 제품에서 중복 없는 구매처 목록을 만든다.
// nil/공백은 건너뛰고 한국어 로캘 기준 오름차순으로 정렬한다.
func SupplierOptions(products []models.Product) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, p := range products {
		if p.Supplier == nil {
			continue
		}
		name := strings.TrimSpace(*p.Supplier)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}

	coll := collator()
	sort.SliceStable(options, func(i, j int) bool {
		return coll.CompareString(options[i], options[j]) < 0
	})
	return options
}

// NarrowOptions - 구매처 제안 목록만 좁힌다. 구매처를 실제로 선택하기 전까지
// 제품 필터에는 영향을 주지 않는다.
func NarrowOptions(options []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return options
	}

	out := make([]string, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), query) {
			out = append(out, o)
		}
	}
	return out
}
