package musicxml

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
)

// FacetValidator validates a value against one constraining facet. The base
// argument is the name of the builtin type the restriction bottoms out in,
// which decides how bounds compare (numerically or lexically).
type FacetValidator interface {
	Validate(value string, base string) error
	Name() string
}

// PatternFacet validates against an XSD regular expression.
type PatternFacet struct {
	Pattern string

	once  sync.Once
	regex *regexp.Regexp
	err   error
}

func (f *PatternFacet) Name() string { return "pattern" }

func (f *PatternFacet) Validate(value string, base string) error {
	f.once.Do(func() {
		// XSD patterns are anchored by default.
		f.regex, f.err = regexp.Compile("^(?:" + convertXSDRegex(f.Pattern) + ")$")
	})
	if f.err != nil {
		return fmt.Errorf("invalid pattern %q: %v", f.Pattern, f.err)
	}
	if !f.regex.MatchString(value) {
		return fmt.Errorf("does not match pattern %q", f.Pattern)
	}
	return nil
}

// convertXSDRegex converts XSD character-class shortcuts to Go regex syntax.
func convertXSDRegex(pattern string) string {
	result := pattern
	result = strings.ReplaceAll(result, `\i`, `[_:A-Za-z]`)
	result = strings.ReplaceAll(result, `\c`, `[_:A-Za-z0-9.-]`)
	result = strings.ReplaceAll(result, `\s`, `[ \t\n\r]`)
	result = strings.ReplaceAll(result, `\S`, `[^ \t\n\r]`)
	return result
}

// EnumerationFacet validates membership in a fixed value set.
type EnumerationFacet struct {
	Values []string
}

func (f *EnumerationFacet) Name() string { return "enumeration" }

func (f *EnumerationFacet) Validate(value string, base string) error {
	for _, allowed := range f.Values {
		if value == allowed {
			return nil
		}
	}
	return fmt.Errorf("not in enumeration")
}

// MinInclusiveFacet validates value >= bound.
type MinInclusiveFacet struct {
	Value string
}

func (f *MinInclusiveFacet) Name() string { return "minInclusive" }

func (f *MinInclusiveFacet) Validate(value string, base string) error {
	cmp, err := compareValues(value, f.Value, base)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("must be >= %s", f.Value)
	}
	return nil
}

// MaxInclusiveFacet validates value <= bound.
type MaxInclusiveFacet struct {
	Value string
}

func (f *MaxInclusiveFacet) Name() string { return "maxInclusive" }

func (f *MaxInclusiveFacet) Validate(value string, base string) error {
	cmp, err := compareValues(value, f.Value, base)
	if err != nil {
		return err
	}
	if cmp > 0 {
		return fmt.Errorf("must be <= %s", f.Value)
	}
	return nil
}

// MinExclusiveFacet validates value > bound.
type MinExclusiveFacet struct {
	Value string
}

func (f *MinExclusiveFacet) Name() string { return "minExclusive" }

func (f *MinExclusiveFacet) Validate(value string, base string) error {
	cmp, err := compareValues(value, f.Value, base)
	if err != nil {
		return err
	}
	if cmp <= 0 {
		return fmt.Errorf("must be > %s", f.Value)
	}
	return nil
}

// MaxExclusiveFacet validates value < bound.
type MaxExclusiveFacet struct {
	Value string
}

func (f *MaxExclusiveFacet) Name() string { return "maxExclusive" }

func (f *MaxExclusiveFacet) Validate(value string, base string) error {
	cmp, err := compareValues(value, f.Value, base)
	if err != nil {
		return err
	}
	if cmp >= 0 {
		return fmt.Errorf("must be < %s", f.Value)
	}
	return nil
}

// MinLengthFacet validates a minimum character count.
type MinLengthFacet struct {
	Value int
}

func (f *MinLengthFacet) Name() string { return "minLength" }

func (f *MinLengthFacet) Validate(value string, base string) error {
	if len([]rune(value)) < f.Value {
		return fmt.Errorf("length must be at least %d", f.Value)
	}
	return nil
}

// MaxLengthFacet validates a maximum character count.
type MaxLengthFacet struct {
	Value int
}

func (f *MaxLengthFacet) Name() string { return "maxLength" }

func (f *MaxLengthFacet) Validate(value string, base string) error {
	if len([]rune(value)) > f.Value {
		return fmt.Errorf("length must be at most %d", f.Value)
	}
	return nil
}

// compareValues compares two lexical values under the given builtin base.
func compareValues(v1, v2, base string) (int, error) {
	if isNumericBuiltin(base) {
		f1 := new(big.Float)
		if _, _, err := f1.Parse(v1, 10); err != nil {
			return 0, fmt.Errorf("invalid numeric value %q", v1)
		}
		f2 := new(big.Float)
		if _, _, err := f2.Parse(v2, 10); err != nil {
			return 0, fmt.Errorf("invalid numeric value %q", v2)
		}
		return f1.Cmp(f2), nil
	}
	return strings.Compare(v1, v2), nil
}

func isNumericBuiltin(name string) bool {
	switch name {
	case "decimal", "integer", "nonNegativeInteger", "positiveInteger":
		return true
	}
	return false
}

// NormalizeWhiteSpace applies the XSD whiteSpace facet semantics.
func NormalizeWhiteSpace(value string, whiteSpace string) string {
	switch whiteSpace {
	case "replace":
		result := strings.ReplaceAll(value, "\t", " ")
		result = strings.ReplaceAll(result, "\n", " ")
		result = strings.ReplaceAll(result, "\r", " ")
		return result
	case "collapse":
		return strings.Join(strings.Fields(NormalizeWhiteSpace(value, "replace")), " ")
	default: // preserve
		return value
	}
}

// validateFacets runs every facet against a value already normalized for the
// type's whitespace handling.
func validateFacets(value string, facets []FacetValidator, base string) error {
	for _, f := range facets {
		if err := f.Validate(value, base); err != nil {
			return err
		}
	}
	return nil
}

// Facet constructors used by the generated tables.

func pattern(p string) FacetValidator { return &PatternFacet{Pattern: p} }

func enum(values ...string) FacetValidator { return &EnumerationFacet{Values: values} }

func minIncl(v string) FacetValidator { return &MinInclusiveFacet{Value: v} }

func maxIncl(v string) FacetValidator { return &MaxInclusiveFacet{Value: v} }

func minExcl(v string) FacetValidator { return &MinExclusiveFacet{Value: v} }

func maxExcl(v string) FacetValidator { return &MaxExclusiveFacet{Value: v} }

func minLength(n int) FacetValidator { return &MinLengthFacet{Value: n} }

func maxLength(n int) FacetValidator { return &MaxLengthFacet{Value: n} }
