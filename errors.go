package atomcss

import (
	"fmt"

	"github.com/yacobolo/atomcss/internal/transform"
	"github.com/yacobolo/atomcss/stylesheet"
)

var (
	// ErrMalformedDeclaration is wrapped when the transformer cannot expand
	// a declaration.
	ErrMalformedDeclaration = transform.ErrMalformed
	// ErrRuleRejected is wrapped when the stylesheet refuses a compiled rule.
	ErrRuleRejected = stylesheet.ErrRuleRejected
)

// DeclarationError aborts a CSS call. Class names collected before the
// failing declaration are discarded.
type DeclarationError struct {
	Declaration string
	ClassName   string
	Err         error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("declaration %q (%s): %v", e.Declaration, e.ClassName, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
