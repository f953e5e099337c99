package dataset

import (
	"fmt"

	"github.com/agenthands/parity/internal/core/model"
)

// SchemaError reports required columns absent from an input source. The
// pipeline must abort before the engines run; their data model assumes the
// attribute set is complete.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing expected columns: %v", e.Missing)
}

// IdentityCollisionError reports a key field containing the reserved pair-id
// separator. Flattened pair ids would collide, so the load is rejected.
type IdentityCollisionError struct {
	Field string
	Value string
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("field %s contains the reserved separator %q: %q", e.Field, model.PairIDSeparator, e.Value)
}
