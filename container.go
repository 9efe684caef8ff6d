package musicxml

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/pdebug"
)

// Container is the live mirror of a complex type's particle tree for one
// element instance. It decides where every child may legally attach, tracks
// materialized duplicates and chosen choice branches, and answers the final
// completion check before serialization.
type Container struct {
	ownerName string
	root      *liveNode
	leafOf    map[*Element]*liveDup

	// Traversal helpers are memoized per mutation epoch; any structural
	// change bumps the epoch and invalidates them.
	epoch      uint64
	cacheEpoch uint64
	leafCache  []*liveDup
	nameCache  []string
}

// liveNode mirrors one particle of the content model. Additional occurrences
// materialize as further duplicates in dups, in document order.
type liveNode struct {
	decl      *Particle
	parentDup *liveDup // duplicate owning this node as a branch, nil at root
	branchIdx int      // index within parentDup.branches
	dups      []*liveDup
}

// liveDup is one materialized occurrence of a particle. Internal kinds carry
// one branch node per schema branch; choice tracks its chosen branch; leaves
// host the attached children.
type liveDup struct {
	node     *liveNode
	branches []*liveNode
	chosen   int // choice: branch index, -1 until a child commits
	attached []*Element
}

// journal records undo actions for the scratch mutations of one placement
// search, committed by discarding it and rolled back on failure.
type journal struct {
	undo []func()
}

func (j *journal) record(f func()) { j.undo = append(j.undo, f) }

func (j *journal) mark() int { return len(j.undo) }

func (j *journal) rollbackTo(n int) {
	for i := len(j.undo) - 1; i >= n; i-- {
		j.undo[i]()
	}
	j.undo = j.undo[:n]
}

func newContainer(ownerName string, ct *ComplexType) *Container {
	if ct.Content == nil {
		return nil
	}
	c := &Container{
		ownerName: ownerName,
		leafOf:    make(map[*Element]*liveDup),
	}
	c.root = newLiveNode(ct.Content, nil, 0)
	return c
}

func newLiveNode(decl *Particle, parent *liveDup, branchIdx int) *liveNode {
	n := &liveNode{decl: decl, parentDup: parent, branchIdx: branchIdx}
	n.dups = []*liveDup{newLiveDup(n)}
	return n
}

func newLiveDup(n *liveNode) *liveDup {
	d := &liveDup{node: n, chosen: -1}
	switch n.decl.Kind {
	case GroupParticle:
		d.branches = []*liveNode{newLiveNode(schemaTable().group(n.decl.Name), d, 0)}
	case ElementLeaf:
		// leaves host children directly
	default:
		d.branches = make([]*liveNode, len(n.decl.Branches))
		for i, b := range n.decl.Branches {
			d.branches[i] = newLiveNode(b, d, i)
		}
	}
	return d
}

// tryAttach searches the live tree for a legal placement of child and commits
// it, or reports why none exists. All intermediate mutations go through a
// scratch journal so a failed search leaves the container untouched.
func (c *Container) tryAttach(child *Element) error {
	if pdebug.Enabled {
		g := pdebug.Marker("tryAttach")
		defer g.End()
		pdebug.Printf("placing %s under %s", child.name, c.ownerName)
	}
	j := &journal{}
	leaf, ok := c.attachNode(c.root, child, j)
	if !ok {
		j.rollbackTo(0)
		return &ChildNotAllowedError{
			ElementName: c.ownerName,
			ChildName:   child.name,
			Reason:      c.rejectReason(child.name),
		}
	}
	c.leafOf[child] = leaf
	c.epoch++
	return nil
}

// tryAttachAt bypasses the placement search and targets the forward-th leaf
// matching the child's name, in document order. Ancestor choices along the
// path must be unchosen or already chosen toward that leaf.
func (c *Container) tryAttachAt(child *Element, forward int) error {
	var matching []*liveDup
	for _, d := range c.leafDups() {
		if d.node.decl.Name == child.name {
			matching = append(matching, d)
		}
	}
	if forward < 0 || forward >= len(matching) {
		return &ChildNotAllowedError{
			ElementName: c.ownerName,
			ChildName:   child.name,
			Reason:      fmt.Sprintf("no leaf %s at forward position %d", child.name, forward),
		}
	}
	target := matching[forward]
	if !occursAllows(target.node.decl.Max, len(target.attached)) {
		return &ChildNotAllowedError{
			ElementName: c.ownerName,
			ChildName:   child.name,
			Reason:      fmt.Sprintf("leaf %s at forward position %d is full", child.name, forward),
		}
	}
	for d := target; d.node.parentDup != nil; d = d.node.parentDup {
		pd := d.node.parentDup
		if pd.node.decl.Kind == ChoiceParticle && pd.chosen >= 0 && pd.chosen != d.node.branchIdx {
			return &ChildNotAllowedError{
				ElementName: c.ownerName,
				ChildName:   child.name,
				Reason:      "another choice branch is already in use",
			}
		}
	}
	for d := target; d.node.parentDup != nil; d = d.node.parentDup {
		pd := d.node.parentDup
		if pd.node.decl.Kind == ChoiceParticle {
			pd.chosen = d.node.branchIdx
		}
	}
	target.attached = append(target.attached, child)
	c.leafOf[child] = target
	c.epoch++
	return nil
}

func (c *Container) attachNode(n *liveNode, child *Element, j *journal) (*liveDup, bool) {
	if n.decl.Kind == ElementLeaf {
		d := n.dups[0]
		if n.decl.Name != child.name || !occursAllows(n.decl.Max, len(d.attached)) {
			return nil, false
		}
		j.record(func() { d.attached = d.attached[:len(d.attached)-1] })
		d.attached = append(d.attached, child)
		return d, true
	}
	for _, d := range n.dups {
		cp := j.mark()
		if leaf, ok := c.attachDup(d, child, j); ok {
			return leaf, true
		}
		j.rollbackTo(cp)
	}
	// Existing duplicates cannot take the child. Materialize a fresh one when
	// the particle has remaining capacity and the current duplicate is a
	// complete occurrence.
	if !occursAllows(n.decl.Max, len(n.dups)) {
		return nil, false
	}
	last := n.dups[len(n.dups)-1]
	if !last.hasContent() || !last.satisfied() {
		return nil, false
	}
	if pdebug.Enabled {
		pdebug.Printf("container(%s): duplicating %s for %s", c.ownerName, n.decl.Kind, child.name)
	}
	cp := j.mark()
	d := newLiveDup(n)
	j.record(func() { n.dups = n.dups[:len(n.dups)-1] })
	n.dups = append(n.dups, d)
	if leaf, ok := c.attachDup(d, child, j); ok {
		return leaf, true
	}
	j.rollbackTo(cp)
	return nil, false
}

func (c *Container) attachDup(d *liveDup, child *Element, j *journal) (*liveDup, bool) {
	switch d.node.decl.Kind {
	case SequenceParticle:
		for _, b := range d.branches {
			cp := j.mark()
			if leaf, ok := c.attachNode(b, child, j); ok {
				return leaf, true
			}
			j.rollbackTo(cp)
			// A later branch may only be reached across branches that are
			// already satisfied or satisfiable with no content.
			if !b.satisfied() {
				return nil, false
			}
		}
		return nil, false
	case AllParticle, GroupParticle:
		for _, b := range d.branches {
			cp := j.mark()
			if leaf, ok := c.attachNode(b, child, j); ok {
				return leaf, true
			}
			j.rollbackTo(cp)
		}
		return nil, false
	case ChoiceParticle:
		if d.chosen >= 0 {
			cp := j.mark()
			if leaf, ok := c.attachNode(d.branches[d.chosen], child, j); ok {
				return leaf, true
			}
			j.rollbackTo(cp)
			if d.hasContent() {
				// Committed children pin the chosen branch for this
				// duplicate; the caller may still duplicate the choice.
				return nil, false
			}
		}
		for i, b := range d.branches {
			if i == d.chosen {
				continue
			}
			cp := j.mark()
			if leaf, ok := c.attachNode(b, child, j); ok {
				prev := d.chosen
				j.record(func() { d.chosen = prev })
				d.chosen = i
				return leaf, true
			}
			j.rollbackTo(cp)
		}
		return nil, false
	}
	return nil, false
}

// detach removes a child from its leaf, clears choice selections that became
// empty and prunes empty non-first duplicates on the way up.
func (c *Container) detach(child *Element) bool {
	leaf, ok := c.leafOf[child]
	if !ok {
		return false
	}
	for i, e := range leaf.attached {
		if e == child {
			leaf.attached = append(leaf.attached[:i], leaf.attached[i+1:]...)
			break
		}
	}
	delete(c.leafOf, child)

	for d := leaf; d != nil; {
		if d.hasContent() {
			break
		}
		n := d.node
		if n.decl.Kind == ChoiceParticle {
			d.chosen = -1
		}
		if len(n.dups) > 1 {
			for i, dd := range n.dups {
				if dd == d && i > 0 {
					n.dups = append(n.dups[:i], n.dups[i+1:]...)
					break
				}
			}
		}
		d = n.parentDup
	}
	c.epoch++
	return true
}

// swap replaces old with new in place, keeping the leaf slot.
func (c *Container) swap(old, repl *Element) bool {
	leaf, ok := c.leafOf[old]
	if !ok || repl.name != old.name {
		return false
	}
	for i, e := range leaf.attached {
		if e == old {
			leaf.attached[i] = repl
			delete(c.leafOf, old)
			c.leafOf[repl] = leaf
			c.epoch++
			return true
		}
	}
	return false
}

// orderedElements returns the attached children in document order: duplicate
// order, then branch order, then attachment order within a leaf.
func (c *Container) orderedElements() []*Element {
	var out []*Element
	var walk func(n *liveNode)
	walk = func(n *liveNode) {
		for _, d := range n.dups {
			if n.decl.Kind == ElementLeaf {
				out = append(out, d.attached...)
				continue
			}
			for _, b := range d.branches {
				walk(b)
			}
		}
	}
	walk(c.root)
	return out
}

// leafDups enumerates the leaf duplicates in document order, memoized per
// mutation epoch.
func (c *Container) leafDups() []*liveDup {
	if c.leafCache != nil && c.cacheEpoch == c.epoch {
		return c.leafCache
	}
	var out []*liveDup
	var walk func(n *liveNode)
	walk = func(n *liveNode) {
		for _, d := range n.dups {
			if n.decl.Kind == ElementLeaf {
				out = append(out, d)
				continue
			}
			for _, b := range d.branches {
				walk(b)
			}
		}
	}
	walk(c.root)
	c.leafCache = out
	c.nameCache = nil
	c.cacheEpoch = c.epoch
	return out
}

// possibleChildren lists the distinct leaf names of the content model in
// document order.
func (c *Container) possibleChildren() []string {
	if c.nameCache != nil && c.cacheEpoch == c.epoch {
		return c.nameCache
	}
	seen := make(map[string]bool)
	var names []string
	for _, d := range c.leafDups() {
		if name := d.node.decl.Name; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	c.nameCache = names
	return names
}

func (c *Container) rejectReason(childName string) string {
	possible := c.possibleChildren()
	for _, name := range possible {
		if name == childName {
			return "no remaining legal position for " + childName
		}
	}
	return fmt.Sprintf("possible children are: %s", strings.Join(possible, ", "))
}

// validateCompletion checks that every particle with minOccurs >= 1 is
// satisfied and reports the first missing particle's path.
func (c *Container) validateCompletion() error {
	if path := completionOf(c.root, ""); path != "" {
		return &RequiredChildMissingError{ElementName: c.ownerName, ParticlePath: path}
	}
	return nil
}

// completionOf returns "" when the subtree is complete, else the path of the
// first unsatisfied required particle.
func completionOf(n *liveNode, prefix string) string {
	if !n.hasContent() {
		if n.decl.emptiable() {
			return ""
		}
		return prefix + requiredPath(n.decl)
	}
	satisfied := 0
	for _, d := range n.dups {
		if !d.hasContent() {
			continue
		}
		switch n.decl.Kind {
		case ElementLeaf:
			if len(d.attached) < n.decl.Min {
				return prefix + n.decl.Name
			}
		case GroupParticle:
			if path := completionOf(d.branches[0], prefix+n.decl.Name+"/"); path != "" {
				return path
			}
		case ChoiceParticle:
			if d.chosen < 0 {
				return prefix + requiredPath(n.decl)
			}
			if path := completionOf(d.branches[d.chosen], prefix); path != "" {
				return path
			}
		default: // sequence, all
			for _, b := range d.branches {
				if path := completionOf(b, prefix); path != "" {
					return path
				}
			}
		}
		satisfied++
	}
	if satisfied < n.decl.Min {
		return prefix + requiredPath(n.decl)
	}
	return ""
}

// requiredPath names the first required content of a particle for
// diagnostics; choice alternatives are joined with pipes.
func requiredPath(p *Particle) string {
	switch p.Kind {
	case ElementLeaf:
		return p.Name
	case GroupParticle:
		return p.Name + "/" + requiredPath(schemaTable().group(p.Name))
	case ChoiceParticle:
		parts := make([]string, len(p.Branches))
		for i, b := range p.Branches {
			parts[i] = requiredPath(b)
		}
		return strings.Join(parts, "|")
	default:
		for _, b := range p.Branches {
			if !b.emptiable() {
				return requiredPath(b)
			}
		}
		if len(p.Branches) > 0 {
			return requiredPath(p.Branches[0])
		}
		return p.Kind.String()
	}
}

// occurrences reports how many satisfied occurrences a node currently has.
func (n *liveNode) occurrences() int {
	count := 0
	for _, d := range n.dups {
		if d.hasContent() && d.satisfied() {
			count++
		}
	}
	return count
}

// satisfied reports whether the node currently fulfills its own minOccurs:
// vacuously when empty and emptiable, otherwise every contentful duplicate
// must be a complete occurrence and there must be at least minOccurs of them.
func (n *liveNode) satisfied() bool {
	if !n.hasContent() {
		return n.decl.emptiable()
	}
	satisfied := 0
	for _, d := range n.dups {
		if !d.hasContent() {
			continue
		}
		if !d.satisfied() {
			return false
		}
		satisfied++
	}
	return satisfied >= n.decl.Min
}

func (n *liveNode) hasContent() bool {
	for _, d := range n.dups {
		if d.hasContent() {
			return true
		}
	}
	return false
}

func (d *liveDup) hasContent() bool {
	if d.node.decl.Kind == ElementLeaf {
		return len(d.attached) > 0
	}
	for _, b := range d.branches {
		if b.hasContent() {
			return true
		}
	}
	return false
}

// satisfied reports whether this duplicate is a complete occurrence.
func (d *liveDup) satisfied() bool {
	switch d.node.decl.Kind {
	case ElementLeaf:
		return len(d.attached) >= d.node.decl.Min
	case ChoiceParticle:
		return d.chosen >= 0 && d.branches[d.chosen].satisfied()
	default: // sequence, all, group
		for _, b := range d.branches {
			if !b.satisfied() {
				return false
			}
		}
		return true
	}
}
