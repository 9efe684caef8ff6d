// Package musicxml reads, builds, validates and writes MusicXML 4.0
// documents.
//
// Elements are created by name (or through the generated New* constructors)
// and attach to each other under the control of a content-model container
// compiled from the MusicXML XSD: every AddChild searches the element's
// particle tree for a legal position, duplicating repeatable sequences and
// choices and backtracking across choice branches as needed, and rejects
// children the schema does not allow. Serialization runs a final
// completeness check and emits children in schema order.
//
//	pitch, _ := musicxml.NewPitch()
//	step, _ := musicxml.NewStep("G")
//	pitch.AddChild(step)
//	pitch.SetChild("octave", 3)
//	s, _ := pitch.ToString()
//
// Schema checking can be disabled per element (SetXSDCheck) or per parse
// (WithXSDCheck) to work with partial or nonconforming documents.
package musicxml
