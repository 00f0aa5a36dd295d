package group

import "sync"

// Element is the contract a value type must satisfy to participate in a
// Group. Implementations must be side-effect-free value types:
//
//   - Identity returns the neutral element (same for every receiver).
//   - Compose is the group law; it must be associative and must never
//     mutate either operand.
//   - Key returns a canonical, injective text encoding of the value.
//     Two elements are equal exactly when their keys are equal; the key
//     is what lets the engine index elements in maps (Go slices cannot
//     be map keys).
type Element[E any] interface {
	Identity() E
	Compose(other E) E
	Key() string
}

// identityIndex is the canonical index of the identity element.
const identityIndex = 0

// Group is the closure of a generator set under its composition law,
// with a stable canonical indexing (identity at index 0) and lazily
// derived multiplication/inverse tables and conjugacy classes.
//
// A Group never changes after construction; the lazy caches are
// initialized at most once and are safe to request from concurrent
// readers.
type Group[E Element[E]] struct {
	elems []E
	index map[string]int

	tableOnce sync.Once
	mul       [][]int // mul[i][j] = index(elems[i] ∘ elems[j])
	inv       []int   // inv[i] = j with mul[i][j] == identityIndex

	classOnce sync.Once
	classID   []int   // conjugacy class id per element index
	classes   [][]int // per-class sorted element indices
}

// New computes the closure of gens under their composition law and
// returns the resulting group.
//
// The loop is breadth-first saturation: S = {identity}, frontier = S,
// then repeatedly compose every generator with every frontier element
// and keep what is new, until nothing new appears. If the true closure
// is infinite this never terminates — that is a documented caller
// precondition, softened only by WithMaxElements.
//
// An empty generator slice yields ErrNoGenerators (use Trivial for the
// one-element group).
func New[E Element[E]](gens []E, opts ...Option) (*Group[E], error) {
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Group[E]{index: make(map[string]int)}
	g.add(gens[0].Identity())
	frontier := []E{g.elems[identityIndex]}

	for len(frontier) > 0 {
		var fresh []E
		for _, gen := range gens {
			for _, f := range frontier {
				c := gen.Compose(f)
				if _, seen := g.index[c.Key()]; seen {
					continue
				}
				g.add(c)
				if o.maxElements > 0 && len(g.elems) > o.maxElements {
					return nil, ErrClosureExceeded
				}
				fresh = append(fresh, c)
			}
		}
		frontier = fresh
	}

	return g, nil
}

// Trivial returns the one-element group containing only identity.
func Trivial[E Element[E]](identity E) *Group[E] {
	g := &Group[E]{index: make(map[string]int)}
	g.add(identity.Identity())

	return g
}

// FromClosedSet adopts an element set that is already closed under the
// group law — typically a subgroup extracted from a larger group, such
// as a stabilizer — without re-deriving it from generators. Duplicates
// are dropped; the identity is placed at index 0 and the rest keep
// their given order. Closedness itself is a documented precondition and
// is not verified.
//
// Returns ErrNoElements for an empty slice and ErrMissingIdentity when
// the set lacks the identity.
func FromClosedSet[E Element[E]](elems []E) (*Group[E], error) {
	if len(elems) == 0 {
		return nil, ErrNoElements
	}
	id := elems[0].Identity()
	idKey := id.Key()
	found := false
	for _, e := range elems {
		if e.Key() == idKey {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrMissingIdentity
	}

	g := &Group[E]{index: make(map[string]int)}
	g.add(id)
	for _, e := range elems {
		if _, seen := g.index[e.Key()]; seen {
			continue
		}
		g.add(e)
	}

	return g, nil
}

// add registers e with the next free index.
func (g *Group[E]) add(e E) {
	g.index[e.Key()] = len(g.elems)
	g.elems = append(g.elems, e)
}

// Order returns the number of elements.
func (g *Group[E]) Order() int { return len(g.elems) }

// Identity returns the identity element.
func (g *Group[E]) Identity() E { return g.elems[identityIndex] }

// Elements returns a copy of the element list in canonical index order
// (identity first; the rest in first-discovery order, stable for the
// lifetime of the Group).
func (g *Group[E]) Elements() []E {
	out := make([]E, len(g.elems))
	copy(out, g.elems)

	return out
}

// Element returns the element with canonical index i, or
// ErrIndexOutOfRange.
func (g *Group[E]) Element(i int) (E, error) {
	if i < 0 || i >= len(g.elems) {
		var zero E
		return zero, ErrIndexOutOfRange
	}

	return g.elems[i], nil
}

// IndexOf returns the canonical index of e and whether e is a member.
func (g *Group[E]) IndexOf(e E) (int, bool) {
	i, ok := g.index[e.Key()]

	return i, ok
}

// Contains reports membership of e.
func (g *Group[E]) Contains(e E) bool {
	_, ok := g.index[e.Key()]

	return ok
}

// Inverse returns the inverse of e, or ErrNotInGroup.
func (g *Group[E]) Inverse(e E) (E, error) {
	i, ok := g.index[e.Key()]
	if !ok {
		var zero E
		return zero, ErrNotInGroup
	}
	g.buildTables()

	return g.elems[g.inv[i]], nil
}

// ComposeIndex returns index(e[i] ∘ e[j]) from the multiplication
// table, or ErrIndexOutOfRange.
func (g *Group[E]) ComposeIndex(i, j int) (int, error) {
	if i < 0 || i >= len(g.elems) || j < 0 || j >= len(g.elems) {
		return 0, ErrIndexOutOfRange
	}
	g.buildTables()

	return g.mul[i][j], nil
}

// ConjugacyClass returns the conjugacy class of e — every h∘e∘h⁻¹ for h
// in the group — in canonical index order. Returns ErrNotInGroup when e
// is not a member.
func (g *Group[E]) ConjugacyClass(e E) ([]E, error) {
	i, ok := g.index[e.Key()]
	if !ok {
		return nil, ErrNotInGroup
	}
	g.buildClasses()

	members := g.classes[g.classID[i]]
	out := make([]E, len(members))
	for n, idx := range members {
		out[n] = g.elems[idx]
	}

	return out, nil
}

// Classes returns all conjugacy classes, each in canonical index order.
// Classes are ordered by their smallest member index, so the class of
// the identity comes first.
func (g *Group[E]) Classes() [][]E {
	g.buildClasses()

	out := make([][]E, len(g.classes))
	for c, members := range g.classes {
		cls := make([]E, len(members))
		for n, idx := range members {
			cls[n] = g.elems[idx]
		}
		out[c] = cls
	}

	return out
}

// buildTables populates the multiplication and inverse tables exactly
// once. O(n²) compositions; the inverse table falls out of the same
// pass. sync.Once gives the single-assignment publish semantics the
// concurrency contract asks for.
func (g *Group[E]) buildTables() {
	g.tableOnce.Do(func() {
		n := len(g.elems)
		mul := make([][]int, n)
		inv := make([]int, n)
		for i := 0; i < n; i++ {
			row := make([]int, n)
			for j := 0; j < n; j++ {
				k, ok := g.index[g.elems[i].Compose(g.elems[j]).Key()]
				if !ok {
					// The stored set is the closure; escaping it means the
					// Element implementation broke associativity/closure.
					panic("group: composition escaped the closed element set")
				}
				row[j] = k
				if k == identityIndex {
					inv[i] = j
				}
			}
			mul[i] = row
		}
		g.mul, g.inv = mul, inv
	})
}

// buildClasses populates the conjugacy partition exactly once.
// Scan indices in order; each unlabeled i seeds a fresh class and every
// conjugate e[j]⁻¹ ∘ e[i] ∘ e[j] = mul[inv[j]][mul[i][j]] is labeled
// with it. j == identityIndex labels i itself, so one pass suffices.
func (g *Group[E]) buildClasses() {
	g.classOnce.Do(func() {
		g.buildTables()

		n := len(g.elems)
		classID := make([]int, n)
		for i := range classID {
			classID[i] = -1
		}
		next := 0
		for i := 0; i < n; i++ {
			if classID[i] != -1 {
				continue
			}
			for j := 0; j < n; j++ {
				classID[g.mul[g.inv[j]][g.mul[i][j]]] = next
			}
			next++
		}

		classes := make([][]int, next)
		for i, c := range classID {
			classes[c] = append(classes[c], i) // ascending by construction
		}
		g.classID, g.classes = classID, classes
	})
}
