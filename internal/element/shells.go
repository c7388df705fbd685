package element

// shellCapacities are the K, L and M limits used by the greedy fill. Copper
// and zinc fill M and the rest of their electrons are not placed.
var shellCapacities = [...]int{2, 8, 18}

// MaxShells is the most shells any element can occupy.
const MaxShells = len(shellCapacities)

// ShellCapacity returns the electron limit of shell i (0 is K), or 0 when
// i is outside the filled shells.
func ShellCapacity(i int) int {
	if i < 0 || i >= len(shellCapacities) {
		return 0
	}
	return shellCapacities[i]
}

// ShellOccupancy fills the shells in order until the electrons run out or
// the M shell is full.
func ShellOccupancy(electrons int) []int {
	shells := make([]int, 0, len(shellCapacities))
	for _, limit := range shellCapacities {
		if electrons <= 0 {
			break
		}
		shells = append(shells, min(electrons, limit))
		electrons -= limit
	}
	return shells
}
