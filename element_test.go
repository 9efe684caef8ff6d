package musicxml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchBuild(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	step, err := NewStep("G")
	require.NoError(t, err)
	_, err = pitch.AddChild(step)
	require.NoError(t, err)
	_, err = pitch.SetChild("octave", 3)
	require.NoError(t, err)

	out, err := pitch.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<pitch>
  <step>G</step>
  <octave>3</octave>
</pitch>
`, out)
}

func TestEnumRejection(t *testing.T) {
	_, err := NewStep("H")
	require.Error(t, err)
	var bv *BadValueError
	require.True(t, errors.As(err, &bv))
	assert.Equal(t, "step", bv.TypeName)
	assert.Equal(t, "H", bv.Value)
	assert.Equal(t, "not in enumeration", bv.Reason)
}

func TestMissingRequiredChild(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	_, err = pitch.ToString()
	require.Error(t, err)
	var missing *RequiredChildMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "pitch", missing.ElementName)
	assert.Equal(t, "step", missing.ParticlePath)
}

func TestAttributeValidation(t *testing.T) {
	words, err := NewWords("dolce")
	require.NoError(t, err)
	require.NoError(t, words.SetAttribute("font_family", "Arial"))
	require.NoError(t, words.SetAttribute("font-size", 17.2))

	v, ok := words.Attribute("font-family")
	require.True(t, ok)
	assert.Equal(t, "Arial", v)
	v, ok = words.Attribute("font_size")
	require.True(t, ok)
	assert.Equal(t, "17.2", v)

	err = words.SetAttribute("font-size", "huge")
	require.Error(t, err)
	var bv *BadValueError
	require.True(t, errors.As(err, &bv))
	assert.Equal(t, "font-size", bv.TypeName)
}

func TestUnknownAttribute(t *testing.T) {
	words, err := NewWords("dolce")
	require.NoError(t, err)
	err = words.SetAttribute("volume", 11)
	require.Error(t, err)
	var ua *UnknownAttributeError
	require.True(t, errors.As(err, &ua))
	assert.Equal(t, "words", ua.ElementName)
	assert.Equal(t, "volume", ua.AttrName)
	assert.Contains(t, ua.Allowed, "font-family")
}

func TestRequiredAttribute(t *testing.T) {
	sp, err := NewScorePart()
	require.NoError(t, err)
	_, err = sp.SetChild("part-name", "Violin")
	require.NoError(t, err)

	_, err = sp.ToString()
	require.Error(t, err)
	var ram *RequiredAttributeMissingError
	require.True(t, errors.As(err, &ram))
	assert.Equal(t, "score-part", ram.ElementName)
	assert.Equal(t, "id", ram.AttrName)

	require.NoError(t, sp.SetAttribute("id", "P1"))
	_, err = sp.ToString()
	require.NoError(t, err)
}

func TestClearAttribute(t *testing.T) {
	words, err := NewWords("dolce")
	require.NoError(t, err)
	require.NoError(t, words.SetAttribute("font-family", "Arial"))
	words.ClearAttribute("font_family")
	_, ok := words.Attribute("font-family")
	assert.False(t, ok)
}

func TestSetChildAccessor(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)

	// Scalar builds the default element.
	_, err = pitch.SetChild("step", "G")
	require.NoError(t, err)
	require.NotNil(t, pitch.Child("step"))
	assert.Equal(t, "G", pitch.Child("step").Value())

	// Scalar again updates the existing child in place.
	_, err = pitch.SetChild("step", "A")
	require.NoError(t, err)
	assert.Len(t, pitch.FindChildren("step"), 1)
	assert.Equal(t, "A", pitch.Child("step").Value())

	// An element value attaches directly.
	oct, err := NewOctave(4)
	require.NoError(t, err)
	_, err = pitch.SetChild("octave", oct)
	require.NoError(t, err)
	assert.Same(t, oct, pitch.Child("octave"))

	// nil removes the first match.
	_, err = pitch.SetChild("octave", nil)
	require.NoError(t, err)
	assert.Nil(t, pitch.Child("octave"))

	// Name mismatch is refused.
	_, err = pitch.SetChild("octave", pitch.Child("step"))
	require.Error(t, err)
}

func TestSetChildRejectsIllegalName(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	_, err = pitch.SetChild("duration", 4)
	require.Error(t, err)
	var cna *ChildNotAllowedError
	require.True(t, errors.As(err, &cna))
}

func TestChildUsesDocumentOrder(t *testing.T) {
	att, err := NewAttributes()
	require.NoError(t, err)
	clef, err := NewClef()
	require.NoError(t, err)
	_, err = att.AddChild(clef)
	require.NoError(t, err)
	_, err = att.SetChild("divisions", 1)
	require.NoError(t, err)

	// divisions precedes clef in the content model even though clef was
	// added first.
	assert.Equal(t, "divisions", att.Children(true)[0].Name())
	assert.Equal(t, "clef", att.Children(false)[0].Name())
	assert.Equal(t, "divisions", att.Child("divisions").Name())
	assert.Same(t, clef, att.FindChild("clef"))
}

func TestReplaceChildKeepsSlot(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	stepG, err := NewStep("G")
	require.NoError(t, err)
	_, err = pitch.AddChild(stepG)
	require.NoError(t, err)
	_, err = pitch.SetChild("octave", 3)
	require.NoError(t, err)

	stepA, err := NewStep("A")
	require.NoError(t, err)
	got, err := pitch.ReplaceChild(stepG, stepA)
	require.NoError(t, err)
	assert.Same(t, stepA, got)
	assert.Nil(t, stepG.Parent())
	assert.Same(t, pitch, stepA.Parent())

	out, err := pitch.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<pitch>
  <step>A</step>
  <octave>3</octave>
</pitch>
`, out)
}

func TestReplaceChildRollsBackOnFailure(t *testing.T) {
	note, err := NewNote()
	require.NoError(t, err)
	rest, err := NewRest()
	require.NoError(t, err)
	_, err = note.AddChild(rest)
	require.NoError(t, err)
	_, err = note.SetChild("duration", 4)
	require.NoError(t, err)

	// A second duration cannot replace the rest; the rest must survive.
	dur, err := NewDuration(8)
	require.NoError(t, err)
	_, err = note.ReplaceChild(rest, dur)
	require.Error(t, err)
	assert.Same(t, note, rest.Parent())
	assert.Equal(t, []string{"rest", "duration"}, childNames(note.Children(true)))
}

func TestXSDCheckOffLiteralOrder(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	pitch.SetXSDCheck(false)
	for _, c := range []struct {
		name  string
		value any
	}{
		{"step", "G"}, {"alter", 1}, {"octave", 3},
	} {
		child, err := NewElementValue(c.name, c.value)
		require.NoError(t, err)
		_, err = pitch.AddChild(child)
		require.NoError(t, err)
	}
	out, err := pitch.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<pitch>
  <step>G</step>
  <alter>1</alter>
  <octave>3</octave>
</pitch>
`, out)
}

func TestXSDCheckOffAcceptsAnything(t *testing.T) {
	sp, err := NewScorePart()
	require.NoError(t, err)
	_, err = sp.ToString()
	require.Error(t, err, "part-name and id are required")

	sp.SetXSDCheck(false)
	out, err := sp.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<score-part />\n", out)

	// Undeclared attributes pass with checking off and keep set order.
	require.NoError(t, sp.SetAttribute("custom", "x"))
	out, err = sp.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<score-part custom=\"x\" />\n", out)
}

func TestValueRequiredForSimpleElements(t *testing.T) {
	step, err := NewStep()
	require.NoError(t, err)
	_, err = step.ToString()
	require.Error(t, err)
	var bv *BadValueError
	require.True(t, errors.As(err, &bv))

	require.NoError(t, step.SetValue("F"))
	out, err := step.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<step>F</step>\n", out)
}

func TestValueRejectedOnElementWithoutText(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	err = pitch.SetValue("nope")
	require.Error(t, err)
}

func TestDeepCopyIndependent(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	_, err = pitch.SetChild("step", "C")
	require.NoError(t, err)
	_, err = pitch.SetChild("octave", 4)
	require.NoError(t, err)

	dup := pitch.Copy()
	orig, err := pitch.ToString()
	require.NoError(t, err)
	copied, err := dup.ToString()
	require.NoError(t, err)
	assert.Equal(t, orig, copied)

	// Mutating the copy leaves the original alone.
	_, err = dup.SetChild("step", "D")
	require.NoError(t, err)
	assert.Equal(t, "C", pitch.Child("step").Value())
	assert.Equal(t, "D", dup.Child("step").Value())
	assert.Nil(t, dup.Parent())
}

func TestShallowCopySharesChildren(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	step, err := NewStep("C")
	require.NoError(t, err)
	_, err = pitch.AddChild(step)
	require.NoError(t, err)

	dup := pitch.ShallowCopy()
	require.Len(t, dup.Children(false), 1)
	assert.Same(t, step, dup.Children(false)[0])
	assert.Same(t, pitch, step.Parent())
}

func TestDeepCopyScore(t *testing.T) {
	score := buildHelloWorldScore(t)
	dup := score.Copy()
	orig, err := score.ToString()
	require.NoError(t, err)
	copied, err := dup.ToString()
	require.NoError(t, err)
	assert.Equal(t, orig, copied)
}

// buildHelloWorldScore assembles the usual one-measure C major whole note.
func buildHelloWorldScore(t *testing.T) *Element {
	t.Helper()
	score, err := NewScorePartwise()
	require.NoError(t, err)
	require.NoError(t, score.SetAttribute("version", "4.0"))

	pl := mustAdd(t, score, mustElem(t, "part-list"))
	sp := mustAdd(t, pl, mustElem(t, "score-part"))
	require.NoError(t, sp.SetAttribute("id", "P1"))
	pn := mustAdd(t, sp, mustElemValue(t, "part-name", "Part 1"))
	require.NoError(t, pn.SetAttribute("print-object", "no"))

	part := mustAdd(t, score, mustElem(t, "part"))
	require.NoError(t, part.SetAttribute("id", "P1"))
	measure := mustAdd(t, part, mustElem(t, "measure"))
	require.NoError(t, measure.SetAttribute("number", "1"))

	// key arrives last; the container still emits it before time and clef.
	att := mustAdd(t, measure, mustElem(t, "attributes"))
	mustAdd(t, att, mustElemValue(t, "divisions", 1))
	tm := mustAdd(t, att, mustElem(t, "time"))
	mustAdd(t, tm, mustElemValue(t, "beats", "4"))
	mustAdd(t, tm, mustElemValue(t, "beat-type", "4"))
	clef := mustAdd(t, att, mustElem(t, "clef"))
	mustAdd(t, clef, mustElemValue(t, "sign", "G"))
	mustAdd(t, clef, mustElemValue(t, "line", 2))
	key := mustAdd(t, att, mustElem(t, "key"))
	mustAdd(t, key, mustElemValue(t, "fifths", 0))
	mustAdd(t, key, mustElemValue(t, "mode", "major"))

	note := mustAdd(t, measure, mustElem(t, "note"))
	pitch := mustAdd(t, note, mustElem(t, "pitch"))
	mustAdd(t, pitch, mustElemValue(t, "step", "C"))
	mustAdd(t, pitch, mustElemValue(t, "octave", 4))
	mustAdd(t, note, mustElemValue(t, "duration", 4))
	mustAdd(t, note, mustElemValue(t, "voice", "1"))
	mustAdd(t, note, mustElemValue(t, "type", "whole"))

	bl := mustAdd(t, measure, mustElem(t, "barline"))
	require.NoError(t, bl.SetAttribute("location", "right"))
	mustAdd(t, bl, mustElemValue(t, "bar-style", "light-heavy"))

	return score
}

func mustAdd(t *testing.T, parent, child *Element) *Element {
	t.Helper()
	got, err := parent.AddChild(child)
	require.NoError(t, err)
	return got
}

func TestScoreSerializesInSchemaOrder(t *testing.T) {
	score := buildHelloWorldScore(t)
	out, err := score.ToString()
	require.NoError(t, err)

	// attributes children come out in schema order regardless of how key,
	// time and clef were added.
	assert.Contains(t, out, `    <measure number="1">
      <attributes>
        <divisions>1</divisions>
        <key>
          <fifths>0</fifths>
          <mode>major</mode>
        </key>
        <time>
          <beats>4</beats>
          <beat-type>4</beat-type>
        </time>
        <clef>
          <sign>G</sign>
          <line>2</line>
        </clef>
      </attributes>`)
}
