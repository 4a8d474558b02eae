// Package register decodes bytes written to hardware latches into named
// bit fields.
package register

import "sort"

// Field is Size bits starting at bit Index.
type Field struct {
	Index uint16
	Size  uint16
}

func (f Field) mask() uint16 {
	return (^(uint16(0xFFFF) << f.Size)) << f.Index
}

// Register is a latch whose bits are split into named fields.
type Register struct {
	fields map[string]Field
	Reg    uint16
}

// SetField stores value into the named field, truncating it to the field
// width. Unknown names are ignored.
func (r *Register) SetField(key string, value uint16) {
	field, ok := r.fields[key]
	if !ok {
		return
	}
	mask := field.mask()
	r.Reg = (r.Reg &^ mask) | (mask & (value << field.Index))
}

// SetReg replaces the whole latch.
func (r *Register) SetReg(value uint16) {
	r.Reg = value
}

// GetField returns the value of the named field. It panics on an unknown
// name, which is a programming error in the caller's layout.
func (r *Register) GetField(key string) uint16 {
	field, ok := r.fields[key]
	if !ok {
		panic("register: field " + key + " not found")
	}
	return (r.Reg & field.mask()) >> field.Index
}

// Flag reports whether a one bit field is set.
func (r *Register) Flag(key string) bool {
	return r.GetField(key) != 0
}

// Fields returns every field with its current value.
func (r *Register) Fields() map[string]uint16 {
	out := make(map[string]uint16, len(r.fields))
	for k := range r.fields {
		out[k] = r.GetField(k)
	}
	return out
}

// Names returns the field names ordered by bit position.
func (r *Register) Names() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return r.fields[names[i]].Index < r.fields[names[j]].Index })
	return names
}

// CreateRegister returns a cleared register with the given layout.
func CreateRegister(fields map[string]Field) Register {
	return Register{
		fields: fields,
		Reg:    0,
	}
}
