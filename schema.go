package musicxml

import (
	"fmt"
	"sync"
)

// Unbounded marks a particle with maxOccurs="unbounded".
const Unbounded = -1

// ParticleKind identifies a node of a compiled content model.
type ParticleKind int

const (
	SequenceParticle ParticleKind = iota
	ChoiceParticle
	AllParticle
	GroupParticle
	ElementLeaf
)

func (k ParticleKind) String() string {
	switch k {
	case SequenceParticle:
		return "sequence"
	case ChoiceParticle:
		return "choice"
	case AllParticle:
		return "all"
	case GroupParticle:
		return "group"
	case ElementLeaf:
		return "element"
	}
	return "unknown"
}

// Particle is one node of an XSD content model: an internal indicator
// (sequence, choice, all, group reference) or an element leaf. Particles are
// immutable schema data shared by every container built from them.
type Particle struct {
	Kind     ParticleKind
	Name     string // element name for leaves, group name for group refs
	TypeRef  string // leaf only: complex type override for locally typed elements
	Min      int
	Max      int // Unbounded for maxOccurs="unbounded"
	Branches []*Particle
}

// occursAllows reports whether one more occurrence fits under max given count
// existing ones.
func occursAllows(max, count int) bool {
	return max == Unbounded || count < max
}

// emptiable reports whether one occurrence of the particle can be satisfied
// with no content at all.
func (p *Particle) emptiable() bool {
	if p.Min == 0 {
		return true
	}
	switch p.Kind {
	case ElementLeaf:
		return false
	case ChoiceParticle:
		for _, b := range p.Branches {
			if b.emptiable() {
				return true
			}
		}
		return false
	case GroupParticle:
		root := schemaTable().groups[p.Name]
		return root != nil && root.emptiable()
	default: // sequence, all
		for _, b := range p.Branches {
			if !b.emptiable() {
				return false
			}
		}
		return true
	}
}

// AttributeUse mirrors the XSD use attribute.
type AttributeUse string

const (
	OptionalUse AttributeUse = "optional"
	RequiredUse AttributeUse = "required"
)

// AttributeDecl declares one attribute of a complex type.
type AttributeDecl struct {
	Name    string
	Type    string // simple type reference
	Use     AttributeUse
	Default string
}

// ComplexType binds an element name to its attribute declarations, its
// content-model root and, when the element carries text, the simple type of
// that text. Content is nil for empty and text-only elements.
type ComplexType struct {
	Name          string
	Attributes    []*AttributeDecl
	Content       *Particle
	SimpleContent string // simple type reference, "" when no text allowed
	ValueRequired bool   // element is typed directly by a simple type
}

func (ct *ComplexType) findAttribute(name string) *AttributeDecl {
	for _, a := range ct.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (ct *ComplexType) attributeNames() []string {
	names := make([]string, len(ct.Attributes))
	for i, a := range ct.Attributes {
		names[i] = a.Name
	}
	return names
}

// SimpleTypeKind classifies a simple type definition.
type SimpleTypeKind int

const (
	AtomicType SimpleTypeKind = iota
	RestrictionType
	EnumerationType
	ListType
	UnionType
)

// SimpleType is a compiled simple type definition. Base names either a
// builtin XSD type or another registered simple type.
type SimpleType struct {
	Name     string
	Kind     SimpleTypeKind
	Base     string
	Facets   []FacetValidator
	ItemType string   // list item type
	Members  []string // union member types, tried in order
}

// ElementDecl binds a global element name to its complex type.
type ElementDecl struct {
	Name string
	Type string
}

// SchemaTable is the compiled-in schema: immutable after construction and
// shared process-wide. All lookups are by local name; MusicXML lives in a
// single namespace.
type SchemaTable struct {
	elements     map[string]*ElementDecl
	complexTypes map[string]*ComplexType
	simpleTypes  map[string]*SimpleType
	groups       map[string]*Particle
	roots        []string // document root elements in declaration order
}

var tableOnce = sync.OnceValue(buildSchemaTable)

// schemaTable returns the process-wide table, building it on first use.
func schemaTable() *SchemaTable { return tableOnce() }

func buildSchemaTable() *SchemaTable {
	t := &SchemaTable{
		elements:     make(map[string]*ElementDecl),
		complexTypes: make(map[string]*ComplexType),
		simpleTypes:  make(map[string]*SimpleType),
		groups:       make(map[string]*Particle),
	}
	registerSimpleTypes(t)
	registerComplexTypes(t)
	registerElements(t)
	t.verify()
	return t
}

// complexTypeFor resolves the complex type for an element name.
func (t *SchemaTable) complexTypeFor(elementName string) (*ComplexType, bool) {
	decl, ok := t.elements[elementName]
	if !ok {
		return nil, false
	}
	return t.complexType(decl.Type), true
}

// complexType resolves a type reference. A dangling reference is a schema
// table bug, not user input, hence the panic.
func (t *SchemaTable) complexType(name string) *ComplexType {
	ct, ok := t.complexTypes[name]
	if !ok {
		panic(fmt.Sprintf("musicxml: schema table corrupt: missing complex type %s", name))
	}
	return ct
}

func (t *SchemaTable) simpleType(name string) *SimpleType {
	return t.simpleTypes[name]
}

func (t *SchemaTable) group(name string) *Particle {
	g, ok := t.groups[name]
	if !ok {
		panic(fmt.Sprintf("musicxml: schema table corrupt: missing group %s", name))
	}
	return g
}

// verify walks every registered reference once so table corruption surfaces
// at startup rather than mid-construction.
func (t *SchemaTable) verify() {
	var walk func(p *Particle)
	walk = func(p *Particle) {
		switch p.Kind {
		case GroupParticle:
			if _, ok := t.groups[p.Name]; !ok {
				panic(fmt.Sprintf("musicxml: missing group %s", p.Name))
			}
		case ElementLeaf:
			ref := p.TypeRef
			if ref == "" {
				decl, ok := t.elements[p.Name]
				if !ok {
					panic(fmt.Sprintf("musicxml: leaf %s has no element declaration", p.Name))
				}
				ref = decl.Type
			}
			if _, ok := t.complexTypes[ref]; !ok {
				panic(fmt.Sprintf("musicxml: leaf %s references missing type %s", p.Name, ref))
			}
		}
		for _, b := range p.Branches {
			walk(b)
		}
	}
	for name, decl := range t.elements {
		if _, ok := t.complexTypes[decl.Type]; !ok {
			panic(fmt.Sprintf("musicxml: element %s references missing type %s", name, decl.Type))
		}
	}
	for _, ct := range t.complexTypes {
		if ct.Content != nil {
			walk(ct.Content)
		}
		for _, a := range ct.Attributes {
			if !isBuiltinType(a.Type) && t.simpleTypes[a.Type] == nil {
				panic(fmt.Sprintf("musicxml: attribute %s of %s references missing type %s", a.Name, ct.Name, a.Type))
			}
		}
		if ct.SimpleContent != "" && !isBuiltinType(ct.SimpleContent) && t.simpleTypes[ct.SimpleContent] == nil {
			panic(fmt.Sprintf("musicxml: type %s references missing simple type %s", ct.Name, ct.SimpleContent))
		}
	}
	for _, g := range t.groups {
		walk(g)
	}
}

// Registration helpers called by the generated tables.

func (t *SchemaTable) registerComplexType(ct *ComplexType) {
	t.complexTypes[ct.Name] = ct
}

func (t *SchemaTable) registerSimpleType(st *SimpleType) {
	t.simpleTypes[st.Name] = st
}

func (t *SchemaTable) registerGroup(name string, root *Particle) {
	t.groups[name] = root
}

func (t *SchemaTable) registerElement(name, typeName string) {
	t.elements[name] = &ElementDecl{Name: name, Type: typeName}
}

func (t *SchemaTable) registerRoot(name, typeName string) {
	t.registerElement(name, typeName)
	t.roots = append(t.roots, name)
}

// Particle constructors used by the generated tables.

func seq(min, max int, branches ...*Particle) *Particle {
	return &Particle{Kind: SequenceParticle, Min: min, Max: max, Branches: branches}
}

func cho(min, max int, branches ...*Particle) *Particle {
	return &Particle{Kind: ChoiceParticle, Min: min, Max: max, Branches: branches}
}

func grp(name string, min, max int) *Particle {
	return &Particle{Kind: GroupParticle, Name: name, Min: min, Max: max}
}

func el(name string, min, max int) *Particle {
	return &Particle{Kind: ElementLeaf, Name: name, Min: min, Max: max}
}

func elt(name, typeRef string, min, max int) *Particle {
	return &Particle{Kind: ElementLeaf, Name: name, TypeRef: typeRef, Min: min, Max: max}
}

// Complex type constructors used by the generated tables.

// ct declares a complex type with element content.
func ct(name string, content *Particle, attrList []*AttributeDecl) *ComplexType {
	return &ComplexType{Name: name, Content: content, Attributes: attrList}
}

// ctEmpty declares an attribute-only type.
func ctEmpty(name string, attrList []*AttributeDecl) *ComplexType {
	return &ComplexType{Name: name, Attributes: attrList}
}

// ctText declares a complex type with simple content, typically text plus
// formatting attributes.
func ctText(name, simpleRef string, attrList []*AttributeDecl) *ComplexType {
	return &ComplexType{Name: name, SimpleContent: simpleRef, Attributes: attrList}
}

// ctSimple declares the element shape of a plain simple type: text content
// required, no attributes.
func ctSimple(name, simpleRef string) *ComplexType {
	return &ComplexType{Name: name, SimpleContent: simpleRef, ValueRequired: true}
}

// Simple type constructors used by the generated tables.

func stEnum(name, base string, values ...string) *SimpleType {
	return &SimpleType{Name: name, Kind: EnumerationType, Base: base, Facets: []FacetValidator{enum(values...)}}
}

func stRestrict(name, base string, facets ...FacetValidator) *SimpleType {
	return &SimpleType{Name: name, Kind: RestrictionType, Base: base, Facets: facets}
}

func stAtomic(name, base string) *SimpleType {
	return &SimpleType{Name: name, Kind: AtomicType, Base: base}
}

func stUnion(name string, members ...string) *SimpleType {
	return &SimpleType{Name: name, Kind: UnionType, Members: members}
}

func stList(name, item string) *SimpleType {
	return &SimpleType{Name: name, Kind: ListType, ItemType: item}
}

// Attribute constructors used by the generated tables.

func opt(name, typeRef string) *AttributeDecl {
	return &AttributeDecl{Name: name, Type: typeRef, Use: OptionalUse}
}

func req(name, typeRef string) *AttributeDecl {
	return &AttributeDecl{Name: name, Type: typeRef, Use: RequiredUse}
}

func optDef(name, typeRef, def string) *AttributeDecl {
	return &AttributeDecl{Name: name, Type: typeRef, Use: OptionalUse, Default: def}
}

func attrs(groups ...[]*AttributeDecl) []*AttributeDecl {
	var out []*AttributeDecl
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
