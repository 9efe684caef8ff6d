package musicxml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustElem(t *testing.T, name string) *Element {
	t.Helper()
	e, err := NewElement(name)
	require.NoError(t, err)
	return e
}

func mustElemValue(t *testing.T, name string, value any) *Element {
	t.Helper()
	e, err := NewElementValue(name, value)
	require.NoError(t, err)
	return e
}

func childNames(elems []*Element) []string {
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.Name()
	}
	return names
}

func TestPitchPlacementReorders(t *testing.T) {
	pitch := mustElem(t, "pitch")
	_, err := pitch.AddChild(mustElemValue(t, "step", "G"))
	require.NoError(t, err)
	_, err = pitch.AddChild(mustElemValue(t, "octave", 3))
	require.NoError(t, err)
	// alter arrives after octave but its slot sits between step and octave.
	_, err = pitch.AddChild(mustElemValue(t, "alter", -1))
	require.NoError(t, err)

	assert.Equal(t, []string{"step", "alter", "octave"}, childNames(pitch.Children(true)))
	assert.Equal(t, []string{"step", "octave", "alter"}, childNames(pitch.Children(false)))
}

func TestSequenceRequiresEarlierRequiredSlot(t *testing.T) {
	pitch := mustElem(t, "pitch")
	_, err := pitch.AddChild(mustElemValue(t, "octave", 3))
	require.Error(t, err)
	var cna *ChildNotAllowedError
	require.True(t, errors.As(err, &cna))
	assert.Equal(t, "pitch", cna.ElementName)
	assert.Equal(t, "octave", cna.ChildName)
}

func TestLeafCapacityRejectsExcess(t *testing.T) {
	pitch := mustElem(t, "pitch")
	_, err := pitch.AddChild(mustElemValue(t, "step", "G"))
	require.NoError(t, err)
	_, err = pitch.AddChild(mustElemValue(t, "step", "A"))
	require.Error(t, err)

	var cna *ChildNotAllowedError
	require.True(t, errors.As(err, &cna))
	assert.Equal(t, "step", cna.ChildName)
}

func TestSequenceGroupDuplication(t *testing.T) {
	// The time-signature group (beats, beat-type) repeats for compound
	// signatures like 3/8 + 2/8.
	tm := mustElem(t, "time")
	for _, v := range []struct{ name, value string }{
		{"beats", "3"}, {"beat-type", "8"}, {"beats", "2"}, {"beat-type", "8"},
	} {
		_, err := tm.AddChild(mustElemValue(t, v.name, v.value))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"beats", "beat-type", "beats", "beat-type"},
		childNames(tm.Children(true)))
	require.NoError(t, tm.container.validateCompletion())
}

func TestChoiceDuplicationKeepsOrder(t *testing.T) {
	art := mustElem(t, "articulations")
	for _, name := range []string{"accent", "staccato", "accent"} {
		_, err := art.AddChild(mustElem(t, name))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"accent", "staccato", "accent"},
		childNames(art.Children(true)))

	out, err := art.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<articulations>
  <accent />
  <staccato />
  <accent />
</articulations>
`, out)
}

func TestChoiceExhaustedRejectsCleanly(t *testing.T) {
	// full-note allows exactly one of pitch, unpitched, rest.
	note := mustElem(t, "note")
	_, err := note.AddChild(mustElem(t, "rest"))
	require.NoError(t, err)
	_, err = note.AddChild(mustElem(t, "pitch"))
	require.Error(t, err)
	var cna *ChildNotAllowedError
	require.True(t, errors.As(err, &cna))
	assert.Equal(t, "note", cna.ElementName)
	assert.Equal(t, "pitch", cna.ChildName)
}

func TestNestedChoiceRetry(t *testing.T) {
	// lyric's first choice branch starts with an optional syllabic and a
	// required text; attaching extend has to fall through to the second
	// branch after the first fails.
	lyric := mustElem(t, "lyric")
	ext := mustElem(t, "extend")
	require.NoError(t, ext.SetAttribute("type", "start"))
	_, err := lyric.AddChild(ext)
	require.NoError(t, err)
	require.NoError(t, lyric.container.validateCompletion())
}

func TestCreditSecondWordsUseRepeatingChoice(t *testing.T) {
	credit := mustElem(t, "credit")
	_, err := credit.AddChild(mustElemValue(t, "credit-words", "Title"))
	require.NoError(t, err)
	_, err = credit.AddChild(mustElemValue(t, "credit-words", "Subtitle"))
	require.NoError(t, err)
	assert.Equal(t, []string{"credit-words", "credit-words"},
		childNames(credit.Children(true)))

	// A credit-image no longer fits once words committed the other branch.
	img := mustElem(t, "credit-image")
	require.NoError(t, img.SetAttribute("source", "cover.png"))
	require.NoError(t, img.SetAttribute("type", "image/png"))
	_, err = credit.AddChild(img)
	require.Error(t, err)
}

func TestNoteRegularBranchWins(t *testing.T) {
	// pitch must not land in the grace-note branch, where it would sit
	// behind a required grace element.
	note := mustElem(t, "note")
	_, err := note.AddChild(mustElem(t, "pitch"))
	require.NoError(t, err)
	_, err = note.AddChild(mustElemValue(t, "duration", 4))
	require.NoError(t, err)
	_, err = note.AddChild(mustElemValue(t, "voice", "1"))
	require.NoError(t, err)
	require.NoError(t, note.container.validateCompletion())
	assert.Equal(t, []string{"pitch", "duration", "voice"},
		childNames(note.Children(true)))
}

func TestNoteGraceBranch(t *testing.T) {
	note := mustElem(t, "note")
	_, err := note.AddChild(mustElem(t, "grace"))
	require.NoError(t, err)
	_, err = note.AddChild(mustElem(t, "pitch"))
	require.NoError(t, err)
	// Grace notes carry no duration.
	_, err = note.AddChild(mustElemValue(t, "duration", 4))
	require.Error(t, err)
	require.NoError(t, note.container.validateCompletion())
}

func TestTieBindsTwice(t *testing.T) {
	note := mustElem(t, "note")
	_, err := note.AddChild(mustElem(t, "pitch"))
	require.NoError(t, err)
	_, err = note.AddChild(mustElemValue(t, "duration", 4))
	require.NoError(t, err)
	for _, typ := range []string{"stop", "start"} {
		tie := mustElem(t, "tie")
		require.NoError(t, tie.SetAttribute("type", typ))
		_, err = note.AddChild(tie)
		require.NoError(t, err)
	}
	tie := mustElem(t, "tie")
	require.NoError(t, tie.SetAttribute("type", "start"))
	_, err = note.AddChild(tie)
	require.Error(t, err, "tie has maxOccurs 2")
}

func TestRemoveDeduplicates(t *testing.T) {
	dyn := mustElem(t, "dynamics")
	p := mustElem(t, "p")
	f := mustElem(t, "f")
	_, err := dyn.AddChild(p)
	require.NoError(t, err)
	_, err = dyn.AddChild(f)
	require.NoError(t, err)
	require.Len(t, dyn.container.root.dups, 2)

	require.NoError(t, dyn.Remove(f))
	assert.Len(t, dyn.container.root.dups, 1)
	assert.Equal(t, []string{"p"}, childNames(dyn.Children(true)))
	assert.Nil(t, f.Parent())

	// The freed capacity is usable again.
	_, err = dyn.AddChild(mustElem(t, "ff"))
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "ff"}, childNames(dyn.Children(true)))
}

func TestRemoveAddIsIdentity(t *testing.T) {
	pitch := mustElem(t, "pitch")
	step := mustElemValue(t, "step", "G")
	_, err := pitch.AddChild(step)
	require.NoError(t, err)
	require.NoError(t, pitch.Remove(step))

	assert.Empty(t, pitch.Children(true))
	assert.Empty(t, pitch.Children(false))
	err = pitch.container.validateCompletion()
	var missing *RequiredChildMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "step", missing.ParticlePath)
}

func TestRemoveClearsChoiceSelection(t *testing.T) {
	note := mustElem(t, "note")
	rest := mustElem(t, "rest")
	_, err := note.AddChild(rest)
	require.NoError(t, err)
	require.NoError(t, note.Remove(rest))

	// With the choice cleared, another alternative may be picked.
	_, err = note.AddChild(mustElem(t, "pitch"))
	require.NoError(t, err)
}

func TestValidateCompletionReportsPath(t *testing.T) {
	pitch := mustElem(t, "pitch")
	_, err := pitch.ToString()
	var missing *RequiredChildMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "pitch", missing.ElementName)
	assert.Equal(t, "step", missing.ParticlePath)
}

func TestValidateCompletionPartialSequence(t *testing.T) {
	// A half-filled duplicate must be reported, not just an empty one.
	tm := mustElem(t, "time")
	_, err := tm.AddChild(mustElemValue(t, "beats", "3"))
	require.NoError(t, err)
	_, err = tm.ToString()
	var missing *RequiredChildMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "time-signature/beat-type", missing.ParticlePath)
}

func TestAddChildAtTargetsForwardLeaf(t *testing.T) {
	// metronome: (beat-unit group, (per-minute | beat-unit group)); a
	// metric modulation puts a beat-unit on both sides.
	m := mustElem(t, "metronome")
	_, err := m.AddChild(mustElemValue(t, "beat-unit", "quarter"))
	require.NoError(t, err)
	_, err = m.AddChildAt(mustElemValue(t, "beat-unit", "half"), 1)
	require.NoError(t, err)
	require.NoError(t, m.container.validateCompletion())
	assert.Equal(t, []string{"beat-unit", "beat-unit"}, childNames(m.Children(true)))
	assert.Equal(t, "quarter", m.Children(true)[0].Value())
	assert.Equal(t, "half", m.Children(true)[1].Value())
}

func TestAddChildAtOutOfRange(t *testing.T) {
	m := mustElem(t, "metronome")
	_, err := m.AddChildAt(mustElemValue(t, "beat-unit", "quarter"), 5)
	require.Error(t, err)
}

func TestPossibleChildren(t *testing.T) {
	pitch := mustElem(t, "pitch")
	assert.Equal(t, []string{"step", "alter", "octave"}, pitch.PossibleChildren())

	step := mustElemValue(t, "step", "C")
	assert.Empty(t, step.PossibleChildren())
}

func TestLeafCacheInvalidation(t *testing.T) {
	dyn := mustElem(t, "dynamics")
	before := len(dyn.container.leafDups())
	_, err := dyn.AddChild(mustElem(t, "p"))
	require.NoError(t, err)
	_, err = dyn.AddChild(mustElem(t, "f"))
	require.NoError(t, err)
	after := len(dyn.container.leafDups())
	assert.Greater(t, after, before, "duplication must grow the leaf walk")
}

func TestRejectionLeavesContainerUntouched(t *testing.T) {
	note := mustElem(t, "note")
	_, err := note.AddChild(mustElem(t, "rest"))
	require.NoError(t, err)
	leaves := len(note.container.leafDups())

	_, err = note.AddChild(mustElem(t, "pitch"))
	require.Error(t, err)
	assert.Equal(t, leaves, len(note.container.leafDups()))
	assert.Equal(t, []string{"rest"}, childNames(note.Children(true)))
}
