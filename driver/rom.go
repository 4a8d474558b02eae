package driver

// RomModule is one image file loaded into the flat ROM space.
type RomModule struct {
	Name   string
	Offset uint32
	Length uint32
}

// End is the first offset after the module.
func (m RomModule) End() uint32 {
	return m.Offset + m.Length
}

// RomRegion groups the modules that make up one contiguous span.
type RomRegion struct {
	Name    string
	Base    uint32
	Size    uint32
	Modules []RomModule
}

// Contains reports whether the flat offset lies inside the region.
func (r RomRegion) Contains(offset uint32) bool {
	return offset >= r.Base && offset < r.Base+r.Size
}

// Loaded sums the module lengths of the region.
func (r RomRegion) Loaded() uint32 {
	var total uint32
	for _, m := range r.Modules {
		total += m.Length
	}
	return total
}
