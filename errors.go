package musicxml

import (
	"fmt"
	"strings"
)

// BadValueError reports a scalar that failed simple-type validation.
type BadValueError struct {
	TypeName string
	Value    string
	Reason   string
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("bad value %q for type %s: %s", e.Value, e.TypeName, e.Reason)
}

func badValue(typeName, value, reason string) *BadValueError {
	return &BadValueError{TypeName: typeName, Value: value, Reason: reason}
}

// UnknownAttributeError reports an attribute not declared for an element's
// complex type.
type UnknownAttributeError struct {
	ElementName string
	AttrName    string
	Allowed     []string
}

func (e *UnknownAttributeError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s has no attribute %s", e.ElementName, e.AttrName)
	}
	return fmt.Sprintf("%s has no attribute %s; allowed attributes are: %s",
		e.ElementName, e.AttrName, strings.Join(e.Allowed, ", "))
}

// RequiredAttributeMissingError is raised by the final checks when a required
// attribute has not been set.
type RequiredAttributeMissingError struct {
	ElementName string
	AttrName    string
}

func (e *RequiredAttributeMissingError) Error() string {
	return fmt.Sprintf("%s requires attribute %s", e.ElementName, e.AttrName)
}

// ChildNotAllowedError reports that the content model offers no legal
// placement for a child.
type ChildNotAllowedError struct {
	ElementName string
	ChildName   string
	Reason      string
}

func (e *ChildNotAllowedError) Error() string {
	return fmt.Sprintf("%s cannot take child %s: %s", e.ElementName, e.ChildName, e.Reason)
}

// RequiredChildMissingError is raised by the final checks when a required
// particle is unsatisfied. ParticlePath names the offending particle, with
// enclosing named groups joined by slashes and choice alternatives by pipes.
type RequiredChildMissingError struct {
	ElementName  string
	ParticlePath string
}

func (e *RequiredChildMissingError) Error() string {
	return fmt.Sprintf("%s requires child %s", e.ElementName, e.ParticlePath)
}

// ParseError reports a failure while mapping an XML document onto the element
// tree. Path is the slash-joined element path to the failing node; Offset is
// a byte offset, or -1 when unknown. The parser does not track byte offsets
// and always reports -1.
type ParseError struct {
	Path   string
	Offset int64
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at %s: %s", e.Path, e.Detail)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("parse error at %s (offset %d): %s", e.Path, e.Offset, e.Detail)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
