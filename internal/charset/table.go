package charset

// Mapping is a byte substitution table. Bytes absent from the source set map
// to themselves.
type Mapping struct {
	table [256]byte
	size  int
}

// NewMapping pairs source[i] with target[i]. target must be at least as long
// as source; call Reconcile first. A byte repeated in source takes the target
// byte of its rightmost occurrence.
func NewMapping(source, target []byte) *Mapping {
	m := &Mapping{size: len(source)}
	for i := range m.table {
		m.table[i] = byte(i)
	}
	for i, b := range source {
		m.table[b] = target[i]
	}
	return m
}

// Map returns the substitute for c.
func (m *Mapping) Map(c byte) byte {
	return m.table[c]
}

// Apply substitutes every byte of p in place.
func (m *Mapping) Apply(p []byte) {
	for i, c := range p {
		p[i] = m.table[c]
	}
}

// Len returns the length of the source set the mapping was built from.
func (m *Mapping) Len() int {
	return m.size
}

// Membership is a deletion set.
type Membership struct {
	table [256]bool
	size  int
}

// NewMembership returns the membership table for set.
func NewMembership(set []byte) *Membership {
	m := &Membership{}
	for _, b := range set {
		if !m.table[b] {
			m.table[b] = true
			m.size++
		}
	}
	return m
}

// Contains reports whether c is in the set.
func (m *Membership) Contains(c byte) bool {
	return m.table[c]
}

// Filter compacts p in place, dropping every byte in the set, and returns
// the kept prefix.
func (m *Membership) Filter(p []byte) []byte {
	n := 0
	for _, c := range p {
		if !m.table[c] {
			p[n] = c
			n++
		}
	}
	return p[:n]
}

// Len returns the number of distinct bytes in the set.
func (m *Membership) Len() int {
	return m.size
}
