package logo

import "strings"

// propEntry is one (property-name, value) pair on a name's property
// list.
type propEntry struct {
	prop  string
	value Value
}

// propList is a single name's full property list, kept as a slice of
// (property, value) pairs in insertion order (so `plist` reproduces
// the order `pprop` built it in).
type propList struct {
	name    string
	entries []propEntry
}

// Properties maps (name, property-name) to Value: one propList per
// name, spec.md §4.6.
type Properties struct {
	lists []propList
}

func NewProperties() *Properties {
	return &Properties{}
}

func (p *Properties) findList(name string) int {
	for i := range p.lists {
		if strings.EqualFold(p.lists[i].name, name) {
			return i
		}
	}
	return -1
}

// Put stores prop=value on name's property list, overwriting any
// existing entry for that property name.
func (p *Properties) Put(name, prop string, val Value) {
	li := p.findList(name)
	if li < 0 {
		p.lists = append(p.lists, propList{name: name})
		li = len(p.lists) - 1
	}
	entries := p.lists[li].entries
	for i := range entries {
		if strings.EqualFold(entries[i].prop, prop) {
			entries[i].value = val
			return
		}
	}
	p.lists[li].entries = append(entries, propEntry{prop: prop, value: val})
}

// Get retrieves name's prop value, or NoneValue, false if absent.
func (p *Properties) Get(name, prop string) (Value, bool) {
	li := p.findList(name)
	if li < 0 {
		return NoneValue, false
	}
	for _, e := range p.lists[li].entries {
		if strings.EqualFold(e.prop, prop) {
			return e.value, true
		}
	}
	return NoneValue, false
}

// Remove deletes name's prop entry, if present.
func (p *Properties) Remove(name, prop string) {
	li := p.findList(name)
	if li < 0 {
		return
	}
	entries := p.lists[li].entries
	for i := range entries {
		if strings.EqualFold(entries[i].prop, prop) {
			p.lists[li].entries = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// GetList returns name's full list of (property, value) pairs, in
// insertion order.
func (p *Properties) GetList(name string) []propEntry {
	li := p.findList(name)
	if li < 0 {
		return nil
	}
	return p.lists[li].entries
}

// Count / At give bury-filter-free iteration over every name that has
// properties. No listing or workspace-save primitive exists.
func (p *Properties) Count() int { return len(p.lists) }

func (p *Properties) At(i int) (name string, entries []propEntry, ok bool) {
	if i < 0 || i >= len(p.lists) {
		return "", nil, false
	}
	return p.lists[i].name, p.lists[i].entries, true
}

// EraseAll removes name's entire property list; no primitive calls
// it.
func (p *Properties) EraseAll(name string) {
	li := p.findList(name)
	if li < 0 {
		return
	}
	p.lists = append(p.lists[:li], p.lists[li+1:]...)
}

// GCRootValues returns every value reachable from the property store.
func (p *Properties) GCRootValues() []Value {
	var out []Value
	for _, l := range p.lists {
		for _, e := range l.entries {
			out = append(out, e.value)
		}
	}
	return out
}
