package musicxml

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ParseOption adjusts parsing.
type ParseOption func(*parseConfig)

type parseConfig struct {
	xsdCheck bool
}

// WithXSDCheck toggles schema checking during parsing. With checking off,
// children are appended in document order without placement search and values
// are stored unvalidated.
func WithXSDCheck(on bool) ParseOption {
	return func(c *parseConfig) { c.xsdCheck = on }
}

// ParseMusicXML reads a MusicXML file into an element tree.
func ParseMusicXML(path string, opts ...ParseOption) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "musicxml: reading %s", path)
	}
	root, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "musicxml: parsing %s", path)
	}
	return root, nil
}

// Parse reads a MusicXML document from r into an element tree.
func Parse(r io.Reader, opts ...ParseOption) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "musicxml: reading input")
	}
	return ParseBytes(data, opts...)
}

// ParseBytes reads a MusicXML document from raw bytes into an element tree.
// Non-UTF-8 input is transcoded first; scorewriters commonly export UTF-16
// and ISO-8859-1.
func ParseBytes(data []byte, opts ...ParseOption) (*Element, error) {
	cfg := parseConfig{xsdCheck: true}
	for _, o := range opts {
		o(&cfg)
	}
	utf8Data, err := toUTF8(data)
	if err != nil {
		return nil, &ParseError{Path: "/", Offset: -1, Detail: "transcoding input", Err: err}
	}
	doc, err := xmldom.NewDecoderFromBytes(utf8Data).Decode()
	if err != nil {
		return nil, &ParseError{Path: "/", Offset: -1, Detail: "malformed XML", Err: err}
	}
	root := doc.DocumentElement()
	if root == nil {
		return nil, &ParseError{Path: "/", Offset: -1, Detail: "document has no root element"}
	}
	name := string(root.LocalName())
	elem, err := NewElement(name)
	if err != nil {
		return nil, &ParseError{Path: "/" + name, Offset: -1, Detail: "unknown root element", Err: err}
	}
	elem.SetXSDCheck(cfg.xsdCheck)
	if err := fillElement(elem, root, "/"+name, cfg.xsdCheck); err != nil {
		return nil, err
	}
	return elem, nil
}

// fillElement copies attributes, text content and children from a DOM element
// onto elem, recursing depth-first so every child arrives fully built before
// it attaches.
func fillElement(elem *Element, node xmldom.Element, path string, check bool) error {
	attrList := node.Attributes()
	for i := uint(0); i < attrList.Length(); i++ {
		attr := attrList.Item(i)
		if attr == nil {
			continue
		}
		name := string(attr.NodeName())
		// Namespace declarations and foreign-namespace attributes are not
		// part of the compiled schema.
		if name == "xmlns" || strings.Contains(name, ":") {
			slog.Debug("musicxml: skipping namespaced attribute", "path", path, "attribute", name)
			continue
		}
		if err := elem.SetAttribute(name, string(attr.NodeValue())); err != nil {
			return &ParseError{Path: path, Offset: -1, Detail: "invalid attribute " + name, Err: err}
		}
	}

	if text := elementText(node); text != "" {
		if err := elem.SetValue(text); err != nil {
			return &ParseError{Path: path, Offset: -1, Detail: "invalid text content", Err: err}
		}
	}

	children := node.Children()
	for i := uint(0); i < children.Length(); i++ {
		childNode := children.Item(i)
		if childNode == nil {
			continue
		}
		childName := string(childNode.LocalName())
		childPath := path + "/" + childName
		child, err := elem.newChildNamed(childName)
		if err != nil {
			return &ParseError{Path: childPath, Offset: -1, Detail: "unknown element", Err: err}
		}
		child.SetXSDCheck(check)
		if err := fillElement(child, childNode, childPath, check); err != nil {
			return err
		}
		if _, err := elem.AddChild(child); err != nil {
			return &ParseError{Path: childPath, Offset: -1, Detail: "element not allowed here", Err: err}
		}
	}
	return nil
}

// elementText gathers the direct text nodes of an element, trimmed. MusicXML
// has no mixed content, so surrounding whitespace is formatting only.
func elementText(node xmldom.Element) string {
	var sb strings.Builder
	nodes := node.ChildNodes()
	for i := uint(0); i < nodes.Length(); i++ {
		if n := nodes.Item(i); n != nil && n.NodeType() == 3 { // TEXT_NODE
			sb.WriteString(string(n.NodeValue()))
		}
	}
	return strings.TrimSpace(sb.String())
}

var encodingDecl = regexp.MustCompile(`encoding=["']([A-Za-z0-9._-]+)["']`)

// toUTF8 normalizes the input to UTF-8, honoring a BOM or the XML
// declaration's encoding pseudo-attribute.
func toUTF8(data []byte) ([]byte, error) {
	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return data[3:], nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		m := encodingDecl.FindSubmatch(data[:min(len(data), 256)])
		if m == nil {
			return data, nil
		}
		switch strings.ToLower(string(m[1])) {
		case "utf-8", "us-ascii", "ascii":
			return data, nil
		case "iso-8859-1", "latin1", "latin-1":
			enc = charmap.ISO8859_1
		case "windows-1252", "cp1252":
			enc = charmap.Windows1252
		case "utf-16":
			enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		default:
			slog.Warn("musicxml: unknown encoding, decoding as UTF-8", "encoding", string(m[1]))
			return data, nil
		}
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding input text")
	}
	// The declaration no longer matches the bytes; point it at UTF-8.
	out = encodingDecl.ReplaceAll(out, []byte(`encoding="UTF-8"`))
	return out, nil
}
