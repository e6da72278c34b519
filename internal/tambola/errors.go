package tambola

import "errors"

var (
	// ErrPoolExhausted means the shared 1..90 pool cannot satisfy a
	// required draw. The in-flight batch is aborted, never truncated.
	ErrPoolExhausted = errors.New("tambola: number pool exhausted")

	// ErrRetryLimit means the incremental strategy scrapped too many
	// tickets in a row. It usually points at a depleted pool rather
	// than bad luck.
	ErrRetryLimit = errors.New("tambola: ticket retry limit exceeded")
)
