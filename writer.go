package musicxml

import (
	"strings"
)

// WriteOption adjusts serialization.
type WriteOption func(*writeConfig)

type writeConfig struct {
	indent      int
	declaration bool
}

// WithIndent sets the indentation width in spaces.
func WithIndent(n int) WriteOption {
	return func(c *writeConfig) { c.indent = n }
}

// WithXMLDeclaration toggles the <?xml ...?> header.
func WithXMLDeclaration(on bool) WriteOption {
	return func(c *writeConfig) { c.declaration = on }
}

func newWriteConfig(document bool, opts ...WriteOption) writeConfig {
	cfg := writeConfig{indent: 2, declaration: document}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

const (
	partwiseDoctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 4.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`
	timewiseDoctype = `<!DOCTYPE score-timewise PUBLIC "-//Recordare//DTD MusicXML 4.0 Timewise//EN" "http://www.musicxml.org/dtds/timewise.dtd">`
)

// writeDocument emits the optional prolog followed by the element tree.
func writeDocument(sb *strings.Builder, e *Element, cfg writeConfig) {
	if cfg.declaration {
		sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		switch e.name {
		case "score-partwise":
			sb.WriteString(partwiseDoctype + "\n")
		case "score-timewise":
			sb.WriteString(timewiseDoctype + "\n")
		}
	}
	writeElement(sb, e, 0, cfg.indent)
	sb.WriteString("\n")
}

// writeElement emits one element: attributes in declaration order, then
// either inline text content or indented children. Empty elements self-close.
func writeElement(sb *strings.Builder, e *Element, depth, indent int) {
	pad := strings.Repeat(" ", depth*indent)
	sb.WriteString(pad)
	sb.WriteString("<")
	sb.WriteString(e.name)
	writeAttributes(sb, e)

	children := e.Children(true)
	switch {
	case len(children) == 0 && !e.hasValue:
		sb.WriteString(" />")
	case len(children) == 0:
		sb.WriteString(">")
		sb.WriteString(escapeText(e.value))
		sb.WriteString("</")
		sb.WriteString(e.name)
		sb.WriteString(">")
	default:
		sb.WriteString(">")
		if e.hasValue {
			sb.WriteString(escapeText(e.value))
		}
		for _, c := range children {
			sb.WriteString("\n")
			writeElement(sb, c, depth+1, indent)
		}
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString("</")
		sb.WriteString(e.name)
		sb.WriteString(">")
	}
}

// writeAttributes emits declared attributes in schema declaration order, then
// undeclared ones (possible only with checking off) in set order.
func writeAttributes(sb *strings.Builder, e *Element) {
	for _, decl := range e.decl.Attributes {
		if v, ok := e.attrs[decl.Name]; ok {
			sb.WriteString(" ")
			sb.WriteString(decl.Name)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(v))
			sb.WriteString(`"`)
		}
	}
	for _, name := range e.extra {
		if v, ok := e.attrs[name]; ok {
			sb.WriteString(" ")
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(v))
			sb.WriteString(`"`)
		}
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	"\n", "&#10;", "\t", "&#9;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
