package element

const (
	MinAtomicNumber = 1
	MaxAtomicNumber = 30
)

// Record is an immutable table entry.
type Record struct {
	AtomicNumber int
	Name         string
	Symbol       string
	Mass         int // relative atomic mass, rounded
}

// Protons equals the atomic number.
func (r Record) Protons() int { return r.AtomicNumber }

// Neutrons is the mass number minus the atomic number.
func (r Record) Neutrons() int { return r.Mass - r.AtomicNumber }

// Electrons assumes a neutral atom.
func (r Record) Electrons() int { return r.AtomicNumber }

var table = [...]Record{
	{1, "Hydrogen", "H", 1},
	{2, "Helium", "He", 4},
	{3, "Lithium", "Li", 7},
	{4, "Beryllium", "Be", 9},
	{5, "Boron", "B", 11},
	{6, "Carbon", "C", 12},
	{7, "Nitrogen", "N", 14},
	{8, "Oxygen", "O", 16},
	{9, "Fluorine", "F", 19},
	{10, "Neon", "Ne", 20},
	{11, "Sodium", "Na", 23},
	{12, "Magnesium", "Mg", 24},
	{13, "Aluminium", "Al", 27},
	{14, "Silicon", "Si", 28},
	{15, "Phosphorus", "P", 31},
	{16, "Sulfur", "S", 32},
	{17, "Chlorine", "Cl", 35},
	{18, "Argon", "Ar", 40},
	{19, "Potassium", "K", 39},
	{20, "Calcium", "Ca", 40},
	{21, "Scandium", "Sc", 45},
	{22, "Titanium", "Ti", 48},
	{23, "Vanadium", "V", 51},
	{24, "Chromium", "Cr", 52},
	{25, "Manganese", "Mn", 55},
	{26, "Iron", "Fe", 56},
	{27, "Cobalt", "Co", 59},
	{28, "Nickel", "Ni", 59},
	{29, "Copper", "Cu", 64},
	{30, "Zinc", "Zn", 65},
}

// Lookup returns the record for atomicNumber, or a *RangeError wrapping
// ErrOutOfRange when the number is outside the table.
func Lookup(atomicNumber int) (Record, error) {
	if atomicNumber < MinAtomicNumber || atomicNumber > MaxAtomicNumber {
		return Record{}, &RangeError{AtomicNumber: atomicNumber}
	}
	return table[atomicNumber-1], nil
}

// MustLookup is Lookup for callers that have already validated the range.
func MustLookup(atomicNumber int) Record {
	rec, err := Lookup(atomicNumber)
	if err != nil {
		panic(err)
	}
	return rec
}

// All returns a copy of the whole table in atomic-number order.
func All() []Record {
	out := make([]Record, len(table))
	copy(out, table[:])
	return out
}
