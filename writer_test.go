package musicxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmptyElementSelfCloses(t *testing.T) {
	rest, err := NewRest()
	require.NoError(t, err)
	out, err := rest.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<rest />\n", out)
}

func TestWriteAttributeDeclarationOrder(t *testing.T) {
	// print-style attributes declare position before font before color; the
	// set order must not leak into the output.
	words, err := NewWords("cresc.")
	require.NoError(t, err)
	require.NoError(t, words.SetAttribute("font-style", "italic"))
	require.NoError(t, words.SetAttribute("default-y", -20))
	out, err := words.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<words default-y=\"-20\" font-style=\"italic\">cresc.</words>\n", out)
}

func TestWriteEscapes(t *testing.T) {
	creator, err := NewCreator("Dvořák, Antonín <& sons>")
	require.NoError(t, err)
	require.NoError(t, creator.SetAttribute("type", `composer "old"`))
	out, err := creator.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<creator type="composer &quot;old&quot;">Dvořák, Antonín &lt;&amp; sons&gt;</creator>`+"\n", out)
}

func TestWriteIndentOption(t *testing.T) {
	pitch, err := NewPitch()
	require.NoError(t, err)
	_, err = pitch.SetChild("step", "G")
	require.NoError(t, err)
	_, err = pitch.SetChild("octave", 3)
	require.NoError(t, err)
	out, err := pitch.ToString(WithIndent(4))
	require.NoError(t, err)
	assert.Equal(t, "<pitch>\n    <step>G</step>\n    <octave>3</octave>\n</pitch>\n", out)
}

func TestWriteDocumentProlog(t *testing.T) {
	score := buildHelloWorldScore(t)
	var sb strings.Builder
	require.NoError(t, score.Write(&sb))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 4.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">
<score-partwise version="4.0">`), "got prolog: %s", out[:200])

	// The declaration can be switched off.
	sb.Reset()
	require.NoError(t, score.Write(&sb, WithXMLDeclaration(false)))
	assert.True(t, strings.HasPrefix(sb.String(), "<score-partwise"))
}

// Mirrors authoring with checking off: children keep their literal order and
// nothing is validated.
func TestWritePartListWithCheckingOff(t *testing.T) {
	partList, err := NewPartList()
	require.NoError(t, err)
	_, err = partList.ToString()
	require.Error(t, err, "score-part is required")
	partList.SetXSDCheck(false)

	out, err := partList.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<part-list />\n", out)

	addScorePart := func(id string) {
		sp, err := NewScorePart()
		require.NoError(t, err)
		require.NoError(t, sp.SetAttribute("id", id))
		_, err = partList.AddChild(sp)
		require.NoError(t, err)
	}
	addPartGroup := func(number, typ string, children bool) {
		pg, err := NewPartGroup()
		require.NoError(t, err)
		require.NoError(t, pg.SetAttribute("number", number))
		require.NoError(t, pg.SetAttribute("type", typ))
		if children {
			gs, err := NewGroupSymbol("square")
			require.NoError(t, err)
			_, err = pg.AddChild(gs)
			require.NoError(t, err)
			gb, err := NewGroupBarline("yes")
			require.NoError(t, err)
			_, err = pg.AddChild(gb)
			require.NoError(t, err)
		}
		_, err = partList.AddChild(pg)
		require.NoError(t, err)
	}

	addScorePart("p-1")
	addPartGroup("1", "start", true)
	addScorePart("p-2")
	addPartGroup("1", "stop", false)
	addScorePart("p-3")

	out, err = partList.ToString()
	require.NoError(t, err)
	assert.Equal(t, `<part-list>
  <score-part id="p-1" />
  <part-group type="start" number="1">
    <group-symbol>square</group-symbol>
    <group-barline>yes</group-barline>
  </part-group>
  <score-part id="p-2" />
  <part-group type="stop" number="1" />
  <score-part id="p-3" />
</part-list>
`, out)
}
