package domain

import (
	"strings"
	"unicode"
)

// NormalizePhone приводит номер к виду +<код страны><номер>.
// Пробелы и разделители "-", "(", ")" удаляются, ведущие "00" заменяются
// на "+", номер с ведущим "0" без "+" получает DefaultCountryCode.
func NormalizePhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		if r == '-' || r == '(' || r == ')' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if strings.HasPrefix(phone, "00") {
		return "+" + phone[2:]
	}
	if !strings.HasPrefix(phone, "+") && strings.HasPrefix(phone, "0") {
		return DefaultCountryCode + strings.TrimLeft(phone, "0")
	}
	return phone
}

// CountDigits количество цифр в строке
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
