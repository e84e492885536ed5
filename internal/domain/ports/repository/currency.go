package repository

import "context"

// CurrencyRepository is the port for currency master data: which ISO codes the
// gateway accepts and how many minor units each carries. Lookups tolerate raw
// input (trimmed, case-insensitive); a blank code is domain.ErrInvalidArgument.
type CurrencyRepository interface {
	IsSupported(ctx context.Context, code string) (bool, error)
	// MinorUnit returns domain.ErrNotFound for a well-formed but unknown code.
	MinorUnit(ctx context.Context, code string) (int, error)
	// Supported lists the accepted codes, uppercased and sorted.
	Supported(ctx context.Context) []string
}
