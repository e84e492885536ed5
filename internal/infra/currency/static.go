// Package currency provides the static currency master data implementation.
package currency

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"card-payment-gateway/internal/domain"
	"card-payment-gateway/internal/domain/ports/repository"
)

var _ repository.CurrencyRepository = (*StaticRepo)(nil)

// StaticRepo answers supported/minor-unit queries from a table fixed at
// construction. Each instance owns its own copy; there is no process-wide
// state and no dynamic reloading.
type StaticRepo struct {
	minorUnits map[string]int
}

// NewStaticRepo builds the reference set from code->minor-unit pairs, keyed by
// the trimmed, uppercased code. A nil or empty table falls back to the
// defaults (USD, GBP, EUR, two minor units each).
func NewStaticRepo(table map[string]int) *StaticRepo {
	if len(table) == 0 {
		table = map[string]int{"USD": 2, "GBP": 2, "EUR": 2}
	}
	m := make(map[string]int, len(table))
	for code, minor := range table {
		m[strings.ToUpper(strings.TrimSpace(code))] = minor
	}
	return &StaticRepo{minorUnits: m}
}

func (r *StaticRepo) IsSupported(_ context.Context, code string) (bool, error) {
	key, err := normalize(code)
	if err != nil {
		return false, err
	}
	_, ok := r.minorUnits[key]
	return ok, nil
}

func (r *StaticRepo) MinorUnit(_ context.Context, code string) (int, error) {
	key, err := normalize(code)
	if err != nil {
		return 0, err
	}
	minor, ok := r.minorUnits[key]
	if !ok {
		return 0, fmt.Errorf("%w: currency %s", domain.ErrNotFound, key)
	}
	return minor, nil
}

func (r *StaticRepo) Supported(_ context.Context) []string {
	out := make([]string, 0, len(r.minorUnits))
	for code := range r.minorUnits {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func normalize(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: currency is required", domain.ErrInvalidArgument)
	}
	return strings.ToUpper(strings.TrimSpace(code)), nil
}
