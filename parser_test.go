package musicxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	root, err := ParseBytes([]byte(`<pitch><step>G</step><octave>3</octave></pitch>`))
	require.NoError(t, err)
	assert.Equal(t, "pitch", root.Name())
	assert.Equal(t, "G", root.Child("step").Value())
	assert.Equal(t, "3", root.Child("octave").Value())
}

func TestParseRoundTrip(t *testing.T) {
	score := buildHelloWorldScore(t)
	out, err := score.ToString()
	require.NoError(t, err)

	parsed, err := ParseBytes([]byte(out))
	require.NoError(t, err)
	reout, err := parsed.ToString()
	require.NoError(t, err)
	assert.Equal(t, out, reout)
}

func TestParseTimewise(t *testing.T) {
	doc := `<score-timewise>
  <part-list>
    <score-part id="P1">
      <part-name>Music</part-name>
    </score-part>
  </part-list>
  <measure number="1">
    <part id="P1">
      <note>
        <pitch>
          <step>C</step>
          <octave>4</octave>
        </pitch>
        <duration>4</duration>
      </note>
    </part>
  </measure>
</score-timewise>`
	root, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "score-timewise", root.Name())

	measure := root.Child("measure")
	require.NotNil(t, measure)
	part := measure.Child("part")
	require.NotNil(t, part)
	require.NotNil(t, part.Child("note"))

	out, err := root.ToString()
	require.NoError(t, err)
	assert.Equal(t, doc+"\n", out)
}

func TestParseUnknownElement(t *testing.T) {
	_, err := ParseBytes([]byte(`<pitch><wibble/></pitch>`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/pitch/wibble", pe.Path)
}

func TestParseBadValue(t *testing.T) {
	_, err := ParseBytes([]byte(`<pitch><step>H</step><octave>4</octave></pitch>`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/pitch/step", pe.Path)
	var bv *BadValueError
	assert.True(t, errors.As(err, &bv))
}

func TestParseMisplacedChild(t *testing.T) {
	_, err := ParseBytes([]byte(`<pitch><octave>4</octave><step>G</step></pitch>`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	var cna *ChildNotAllowedError
	assert.True(t, errors.As(err, &cna))
}

func TestParseWithCheckingOff(t *testing.T) {
	root, err := ParseBytes(
		[]byte(`<pitch><octave>4</octave><step>G</step></pitch>`),
		WithXSDCheck(false))
	require.NoError(t, err)
	out, err := root.ToString()
	require.NoError(t, err)
	assert.Equal(t, "<pitch>\n  <octave>4</octave>\n  <step>G</step>\n</pitch>\n", out)
}

func TestParseMalformedXML(t *testing.T) {
	_, err := ParseBytes([]byte(`<pitch><step>G`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestParseUnknownRoot(t *testing.T) {
	_, err := ParseBytes([]byte(`<symphony/>`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/symphony", pe.Path)
}

func TestParseLatin1Encoding(t *testing.T) {
	// 0xE9 is é in ISO-8859-1 and invalid UTF-8 on its own.
	doc := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><creator type="composer">Faur`),
		0xE9)
	doc = append(doc, []byte(`</creator>`)...)
	root, err := ParseBytes(doc)
	require.NoError(t, err)
	assert.Equal(t, "Fauré", root.Value())
}

func TestParseUTF8BOM(t *testing.T) {
	doc := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<step>G</step>`)...)
	root, err := ParseBytes(doc)
	require.NoError(t, err)
	assert.Equal(t, "G", root.Value())
}

func TestParseReader(t *testing.T) {
	root, err := Parse(strings.NewReader(`<step>G</step>`))
	require.NoError(t, err)
	assert.Equal(t, "step", root.Name())
	assert.Equal(t, "G", root.Value())
}

func TestParseAttributesValidated(t *testing.T) {
	_, err := ParseBytes([]byte(`<words font-size="huge">x</words>`))
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/words", pe.Path)
}
