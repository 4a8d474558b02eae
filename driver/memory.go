package driver

// HandlerID names a memory capability implemented by the host core.
type HandlerID string

// NoHandler marks a range the host serves with its default port handling.
const NoHandler = HandlerID("")

// MemoryHandler is the capability a host binds to a HandlerID.
// offset is the distance of addr from the start of the matched range.
type MemoryHandler interface {
	Read(addr uint16, offset uint16) uint8
	Write(addr uint16, offset uint16, data uint8)
}

// AddressRange maps the inclusive CPU window Start..End to a handler.
type AddressRange struct {
	Start   uint16
	End     uint16
	Handler HandlerID
}

// Contains reports whether addr lies inside the range.
func (r AddressRange) Contains(addr uint16) bool {
	return addr >= r.Start && addr <= r.End
}

// Offset returns addr relative to Start. It does not check Contains.
func (r AddressRange) Offset(addr uint16) uint16 {
	return addr - r.Start
}

// Size is the number of addresses covered.
func (r AddressRange) Size() int {
	return int(r.End) - int(r.Start) + 1
}

// Within reports whether r lies completely inside other.
func (r AddressRange) Within(other AddressRange) bool {
	return r.Start >= other.Start && r.End <= other.End
}

// Overlaps reports whether the two ranges share at least one address.
func (r AddressRange) Overlaps(other AddressRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// MemoryMap is an ordered list of address ranges.
type MemoryMap []AddressRange

// Find returns the first range containing addr in declaration order.
func (m MemoryMap) Find(addr uint16) (AddressRange, bool) {
	for _, r := range m {
		if r.Contains(addr) {
			return r, true
		}
	}
	return AddressRange{}, false
}

// Resolve returns the most specific range containing addr. A range nested
// inside a wider one is a specialisation and wins over it; among ranges of
// equal size the first declared one wins.
func (m MemoryMap) Resolve(addr uint16) (AddressRange, bool) {
	found := false
	var best AddressRange
	for _, r := range m {
		if !r.Contains(addr) {
			continue
		}
		if !found || r.Size() < best.Size() {
			best = r
			found = true
		}
	}
	return best, found
}

// Handlers lists every distinct handler bound in the map, in first-use order.
func (m MemoryMap) Handlers() []HandlerID {
	seen := make(map[HandlerID]bool)
	var out []HandlerID
	for _, r := range m {
		if r.Handler == NoHandler || seen[r.Handler] {
			continue
		}
		seen[r.Handler] = true
		out = append(out, r.Handler)
	}
	return out
}
