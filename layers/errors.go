package layers

import (
	"fmt"
	"strings"
)

// SchemaError reports a structural defect found by Compile. Kind is one of
// the sentinel errors and is what errors.Is matches against.
type SchemaError struct {
	Kind     error
	Category string
	Variant  string
	Msg      string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Category
	if e.Variant != "" {
		where = where + "::" + e.Variant
	}
	switch {
	case where == "" && e.Msg == "":
		return e.Kind.Error()
	case where == "":
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %s", e.Kind.Error(), where)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind.Error(), where, e.Msg)
}

func (e *SchemaError) Unwrap() error { return e.Kind }

func schemaErrorf(kind error, category, variant string, format string, args ...any) error {
	return &SchemaError{Kind: kind, Category: category, Variant: variant, Msg: fmt.Sprintf(format, args...)}
}

// cycleError names the variant parent::variant that closes the cycle.
func cycleError(parent, variant string, path []string) error {
	return &SchemaError{Kind: ErrCycle, Category: parent, Variant: variant, Msg: strings.Join(path, " -> ")}
}

// invariantf panics. It is reserved for states that a successfully compiled
// codec makes unreachable, so reaching one is a defect and not bad input.
func invariantf(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}
