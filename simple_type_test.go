package musicxml

import (
	"errors"
	"testing"
)

func TestValidateSimpleType(t *testing.T) {
	tests := []struct {
		name    string
		typeRef string
		value   string
		want    string
		wantErr bool
	}{
		{"step ok", "step", "G", "G", false},
		{"step not in enumeration", "step", "H", "", true},
		{"octave ok", "octave", "3", "3", false},
		{"octave above range", "octave", "10", "", true},
		{"octave below range", "octave", "-1", "", true},
		{"semitones decimal", "semitones", "-1.5", "-1.5", false},
		{"semitones junk", "semitones", "sharp", "", true},
		{"font-size decimal member", "font-size", "17.2", "17.2", false},
		{"font-size css member", "font-size", "x-large", "x-large", false},
		{"font-size no member", "font-size", "huge", "", true},
		{"color ok", "color", "#FF0000", "#FF0000", false},
		{"color with alpha", "color", "#40FF0000", "#40FF0000", false},
		{"color bad digit", "color", "#GG0000", "", true},
		{"color lowercase", "color", "#ff0000", "", true},
		{"positive-divisions zero", "positive-divisions", "0", "", true},
		{"positive-divisions fraction", "positive-divisions", "0.5", "0.5", false},
		{"yes-no ok", "yes-no", "no", "no", false},
		{"yes-no bad", "yes-no", "maybe", "", true},
		{"time-only list", "time-only", "1,2", "1,2", false},
		{"time-only bad", "time-only", "0,2", "", true},
		{"tenths collapses whitespace", "tenths", "  40  ", "40", false},
		{"positive-integer-or-empty empty", "positive-integer-or-empty", "", "", false},
		{"positive-integer-or-empty number", "positive-integer-or-empty", "4", "4", false},
		{"positive-integer-or-empty zero", "positive-integer-or-empty", "0", "", true},
		{"ending-number list", "ending-number", "1, 2", "1, 2", false},
		{"midi-16 in range", "midi-16", "16", "16", false},
		{"midi-16 out of range", "midi-16", "17", "", true},
		{"beam-level range", "beam-level", "8", "8", false},
		{"beam-level zero", "beam-level", "0", "", true},
		{"token builtin", "token", "hello world", "hello world", false},
		{"date ok", "yyyy-mm-dd", "2024-03-01", "2024-03-01", false},
		{"date bad", "yyyy-mm-dd", "2024-13-01", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateSimpleType(tt.typeRef, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s value %q, got none", tt.typeRef, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %s value %q: %v", tt.typeRef, tt.value, err)
			}
			if got != tt.want {
				t.Errorf("normalized value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnumerationErrorReason(t *testing.T) {
	_, err := validateSimpleType("step", "H")
	if err == nil {
		t.Fatal("expected error")
	}
	var bv *BadValueError
	if !errors.As(err, &bv) {
		t.Fatalf("expected BadValueError, got %T", err)
	}
	if bv.TypeName != "step" || bv.Value != "H" || bv.Reason != "not in enumeration" {
		t.Errorf("unexpected error fields: %+v", bv)
	}
}

func TestBuiltinValidators(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		wantErr  bool
	}{
		{"decimal", "12.5", false},
		{"decimal", "+100", false},
		{"decimal", "1e5", true},
		{"integer", "-3", false},
		{"integer", "3.0", true},
		{"nonNegativeInteger", "0", false},
		{"nonNegativeInteger", "-1", true},
		{"positiveInteger", "1", false},
		{"positiveInteger", "0", true},
		{"NMTOKEN", "p1", false},
		{"NMTOKEN", "p 1", true},
		{"ID", "P1", false},
		{"ID", "1P", true},
		{"token", "a  b", true},
	}
	for _, tt := range tests {
		bt := getBuiltinType(tt.typeName)
		if bt == nil {
			t.Fatalf("missing builtin %s", tt.typeName)
		}
		err := bt.Validator(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s(%q): err = %v, wantErr %v", tt.typeName, tt.value, err, tt.wantErr)
		}
	}
}

func TestSchemaTableVerifies(t *testing.T) {
	// Building the table panics on dangling references; reaching here means
	// the generated tables are internally consistent.
	tbl := schemaTable()
	if _, ok := tbl.complexTypeFor("score-partwise"); !ok {
		t.Fatal("score-partwise not registered")
	}
	if _, ok := tbl.complexTypeFor("score-timewise"); !ok {
		t.Fatal("score-timewise not registered")
	}
	if len(tbl.roots) != 2 {
		t.Errorf("expected 2 document roots, got %d", len(tbl.roots))
	}
}
