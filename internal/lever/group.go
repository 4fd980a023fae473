package lever

import "math"

// GroupByForce partitions force values into equivalence classes: values
// within tol of a group's first member join that group. Assignment is stable
// and first-seen-wins; pairwise comparison is fine at this scale.
func GroupByForce(forces []float64, tol float64) []int {
	groups := make([]int, len(forces))
	for i := range groups {
		groups[i] = -1
	}

	next := 0
	for i := range forces {
		if groups[i] != -1 {
			continue
		}
		groups[i] = next
		for j := i + 1; j < len(forces); j++ {
			if groups[j] == -1 && math.Abs(forces[i]-forces[j]) <= tol {
				groups[j] = next
			}
		}
		next++
	}
	return groups
}
