package musicxml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// validateSimpleType checks a raw scalar against a simple type reference and
// returns the whitespace-normalized value. The reference names either a
// builtin or a type from the compiled tables; anything else is a corrupt
// table and panics.
func validateSimpleType(typeRef, raw string) (string, error) {
	value := NormalizeWhiteSpace(raw, whitespaceFor(typeRef))
	if err := checkSimpleType(typeRef, value); err != nil {
		var bv *BadValueError
		if errors.As(err, &bv) {
			// Surface the outermost type name, keep the innermost reason.
			return "", badValue(typeRef, raw, bv.Reason)
		}
		return "", badValue(typeRef, raw, err.Error())
	}
	return value, nil
}

func checkSimpleType(typeRef, value string) error {
	if bt := getBuiltinType(typeRef); bt != nil {
		return bt.Validator(value)
	}
	st := schemaTable().simpleType(typeRef)
	if st == nil {
		panic(fmt.Sprintf("musicxml: schema table corrupt: missing simple type %s", typeRef))
	}
	switch st.Kind {
	case AtomicType:
		return checkSimpleType(st.Base, value)
	case RestrictionType, EnumerationType:
		if err := checkSimpleType(st.Base, value); err != nil {
			return err
		}
		if err := validateFacets(value, st.Facets, rootBuiltin(typeRef)); err != nil {
			return badValue(st.Name, value, err.Error())
		}
		return nil
	case ListType:
		for _, item := range strings.Fields(value) {
			if err := checkSimpleType(st.ItemType, item); err != nil {
				return badValue(st.Name, value, fmt.Sprintf("list item %q invalid", item))
			}
		}
		return nil
	case UnionType:
		for _, member := range st.Members {
			if checkSimpleType(member, NormalizeWhiteSpace(value, whitespaceFor(member))) == nil {
				return nil
			}
		}
		return badValue(st.Name, value,
			fmt.Sprintf("no member type accepts it (tried %s)", strings.Join(st.Members, ", ")))
	}
	panic(fmt.Sprintf("musicxml: unknown simple type kind for %s", typeRef))
}

// whitespaceFor resolves the whitespace handling for a type reference by
// following its base chain to a builtin.
func whitespaceFor(typeRef string) string {
	return builtinWhitespace(rootBuiltin(typeRef))
}

// rootBuiltin follows a simple type's base chain down to the builtin it is
// derived from. Lists and unions normalize like tokens.
func rootBuiltin(typeRef string) string {
	for {
		if isBuiltinType(typeRef) {
			return typeRef
		}
		st := schemaTable().simpleType(typeRef)
		if st == nil {
			panic(fmt.Sprintf("musicxml: schema table corrupt: missing simple type %s", typeRef))
		}
		switch st.Kind {
		case ListType, UnionType:
			return "token"
		}
		typeRef = st.Base
	}
}

// lexicalValue renders a Go scalar into XML lexical form prior to validation.
func lexicalValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("unsupported scalar type %T", v)
	}
}
