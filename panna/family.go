package panna

// FindFamilyGroup returns the family group owning the given pana. The groups
// are small and fixed, so a linear scan is enough.
func FindFamilyGroup(number string) (FamilyGroup, bool) {
	for _, g := range FamilyGroups {
		for _, n := range g.Numbers {
			if n == number {
				return g, true
			}
		}
	}
	return FamilyGroup{}, false
}
