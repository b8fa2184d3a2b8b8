package goo

// Influence returns the brush weight at distance from the brush center:
// 1 at the center, 0 at and beyond radius, with a smoothstep curve in
// between so the brush boundary leaves no visible seam.
func Influence(distance, radius float64) float64 {
	if radius <= 0 || distance < 0 || distance >= radius {
		return 0
	}

	n := 1 - distance/radius
	s := n * n * (3 - 2*n)

	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
