package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes corta s em no máximo n caracteres sem quebrar sequências UTF-8
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n])
}

// TrimAndTruncate remove espaços das pontas e limita o tamanho a n caracteres
func TrimAndTruncate(s string, n int) string {
	return TruncateRunes(strings.TrimSpace(s), n)
}
