package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 1, 200))
	assert.Equal(t, 1, Clamp(-10, 1, 200))
	assert.Equal(t, 50, Clamp(50, 1, 200))
	assert.Equal(t, 200, Clamp(500, 1, 200))
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "menor que o limite", in: "inho", n: 30, want: "inho"},
		{name: "exatamente no limite", in: strings.Repeat("a", 30), n: 30, want: strings.Repeat("a", 30)},
		{name: "acima do limite", in: strings.Repeat("a", 40), n: 30, want: strings.Repeat("a", 30)},
		{name: "multibyte", in: "푸딩점프푸딩점프", n: 4, want: "푸딩점프"},
		{name: "limite zero", in: "abc", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.n))
		})
	}
}

func TestTrimAndTruncate(t *testing.T) {
	assert.Equal(t, "mina", TrimAndTruncate("   mina \t", 30))
	assert.Equal(t, "", TrimAndTruncate("    ", 30))
}
