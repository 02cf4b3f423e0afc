package render

import (
	"fmt"

	"faithful/internal/source"
)

// InconsistentSpanError reports that reconciliation was asked to move the
// cursor backward in reading order. It indicates malformed input from the
// tokenizer: overlapping or out-of-order spans.
type InconsistentSpanError struct {
	From source.Pos // where the cursor was
	To   source.Pos // where the token claims to start
}

func (e *InconsistentSpanError) Error() string {
	return fmt.Sprintf("inconsistent span: target %s precedes cursor %s", e.To, e.From)
}

func sinkErr(err error) error {
	return fmt.Errorf("sink write: %w", err)
}
