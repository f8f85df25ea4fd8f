package heals

import (
	"strconv"
	"strings"
)

// nextSlug выбирает свободный slug среди занятых вариантов base и base-N.
// Если base свободен, возвращается base. Иначе берется наибольший
// существующий суффикс плюс один, пропуски не заполняются:
// {reiki, reiki-3} -> reiki-4.
func nextSlug(base string, taken []string) string {
	maxSuffix := 1
	baseTaken := false

	for _, s := range taken {
		if s == base {
			baseTaken = true
			continue
		}
		suffix, ok := strings.CutPrefix(s, base+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > maxSuffix {
			maxSuffix = n
		}
	}

	if !baseTaken {
		return base
	}
	return base + "-" + strconv.Itoa(maxSuffix+1)
}
