package kv

// Change is one staged set or removal.
type Change struct {
	Key    string
	Value  string
	Remove bool
}

// Pending is an ordered set of staged changes awaiting a commit.
// The zero value is empty and ready to use.
type Pending struct {
	changes []Change
}

// Set stages key=value.
func (p *Pending) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}
	p.changes = append(p.changes, Change{Key: key, Value: value})
	return nil
}

// Remove stages the removal of key.
func (p *Pending) Remove(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	p.changes = append(p.changes, Change{Key: key, Remove: true})
	return nil
}

// Lookup returns the latest staged change for key.
func (p *Pending) Lookup(key string) (Change, bool) {
	for i := len(p.changes) - 1; i >= 0; i-- {
		if p.changes[i].Key == key {
			return p.changes[i], true
		}
	}
	return Change{}, false
}

// Len returns the number of staged changes, including superseded ones.
func (p *Pending) Len() int {
	return len(p.changes)
}

// Changes returns a copy of the staged changes in staging order.
func (p *Pending) Changes() []Change {
	out := make([]Change, len(p.changes))
	copy(out, p.changes)
	return out
}

// Merge applies every staged change to m in staging order, so the last
// writer of a key wins.
func (p *Pending) Merge(m *Map) {
	for _, c := range p.changes {
		if c.Remove {
			m.Remove(c.Key)
			continue
		}
		m.set(c.Key, c.Value)
	}
}

// Reset discards every staged change.
func (p *Pending) Reset() {
	p.changes = p.changes[:0]
}
