package domain

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify строит slug из заголовка: нижний регистр, все кроме [a-z0-9]
// заменяется на "-", крайние дефисы обрезаются.
// Для заголовков без латинских букв и цифр возвращает пустую строку.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
