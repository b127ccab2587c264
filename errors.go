package pokelance

import "github.com/FallenDeity/PokeLance/ports"

// Error classes, re-exported so callers only need this package. Match
// with errors.Is.
var (
	ErrNotFound      = ports.ErrNotFound
	ErrDecode        = ports.ErrDecode
	ErrConfiguration = ports.ErrConfiguration
	ErrNetwork       = ports.ErrNetwork
	ErrIO            = ports.ErrIO
)

// NotFoundError carries the failed lookup's category and key plus close
// name suggestions. Match with errors.As.
type NotFoundError = ports.NotFoundError
