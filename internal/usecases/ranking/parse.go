package ranking

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/score-ranking-api/pkg/utils"
)

const (
	MaxGameIDLength = 50
	MaxNameLength   = 30

	DefaultTopLimit    = 50
	DefaultLatestLimit = 20
	MinLimit           = 1
	MaxLimit           = 200
)

// ParseScore converte o score recebido em um inteiro não negativo.
//
// Aceita:
//   - números JSON (json.Number ou float64) cujo valor é inteiro, incluindo 123.0
//   - inteiros Go
//   - strings com um literal inteiro em base 10, ex: "123"
//
// Qualquer outra coisa (nil, bool, 1.5, -1, NaN, objetos) resulta em ErrInvalidScore.
func ParseScore(v any) (int64, error) {
	switch value := v.(type) {
	case json.Number:
		return parseNumberLiteral(string(value))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || n < 0 {
			return 0, ErrInvalidScore
		}
		return n, nil
	case float64:
		return fromFloat(value)
	case int:
		return fromInt(int64(value))
	case int32:
		return fromInt(int64(value))
	case int64:
		return fromInt(value)
	default:
		return 0, ErrInvalidScore
	}
}

func parseNumberLiteral(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromInt(n)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidScore
	}
	return fromFloat(f)
}

func fromInt(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrInvalidScore
	}
	return n, nil
}

func fromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrInvalidScore
	}
	// 2^63 não cabe em int64
	if f < 0 || f >= math.MaxInt64 {
		return 0, ErrInvalidScore
	}
	return int64(f), nil
}

// ParseLimit interpreta o parâmetro limit da query.
// Vazio, não numérico ou zero usa def; o resultado é sempre limitado a [MinLimit, MaxLimit].
func ParseLimit(raw string, def int) uint64 {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		n = def
	}

	return uint64(utils.Clamp(n, MinLimit, MaxLimit))
}

// sanitizeRequired devolve a string sem espaços nas pontas, limitada a max caracteres.
// ok é falso quando v não é string ou fica vazia depois do trim.
func sanitizeRequired(v any, max int) (string, bool) {
	s, isString := v.(string)
	if !isString {
		return "", false
	}

	s = utils.TrimAndTruncate(s, max)
	return s, s != ""
}
