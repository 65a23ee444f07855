package portable

import (
	"fmt"

	"github.com/mre/crux/internal/symbolgraph"
)

// UnknownPrimitiveError reports a primitive name token with no entry in the
// fixed table.
type UnknownPrimitiveError struct {
	Name string
}

func (e *UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("unknown primitive type %q", e.Name)
}

// InaccessibleFieldsError reports a data-bearing item whose fields were
// redacted from the document. A binding generated from a partial shape would
// be wrong, so the whole run aborts.
type InaccessibleFieldsError struct {
	Item string
}

func (e *InaccessibleFieldsError) Error() string {
	return fmt.Sprintf(
		"the %s item has private fields; make them public to include them in generated bindings",
		e.Item,
	)
}

// UnimplementedGenericArgError marks a generic-argument kind this tool does
// not handle yet. It signals a defect-class condition, not a user error.
type UnimplementedGenericArgError struct {
	Kind symbolgraph.GenericArgKind
}

func (e *UnimplementedGenericArgError) Error() string {
	return fmt.Sprintf("generic %s arguments in angle brackets are not implemented", e.Kind)
}
