package model

// EvenIndices picks at most points indices spread evenly over [0, n).
// The last index is always included, the first one whenever points is not 1.
// A single point yields only the last index.
func EvenIndices(n, points int) []int {
	if n <= 0 {
		return []int{}
	}
	if points <= 0 || points >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	if points == 1 {
		return []int{n - 1}
	}

	idx := make([]int, points)
	step := float64(n-1) / float64(points-1)
	for i := range idx {
		idx[i] = int(float64(i)*step + 0.5)
	}
	idx[points-1] = n - 1
	return idx
}

// EveryIndices picks every n-th index of [0, length) plus the last one.
func EveryIndices(length, every int) []int {
	if every <= 1 {
		return EvenIndices(length, 0)
	}
	idx := make([]int, 0, length/every+2)
	for i := 0; i < length; i += every {
		idx = append(idx, i)
	}
	if length > 0 && idx[len(idx)-1] != length-1 {
		idx = append(idx, length-1)
	}
	return idx
}

// Sample returns a copy of the result holding only the series points at idx.
// Scalar summary fields are carried over unchanged.
func (r *SimulationResult) Sample(idx []int) *SimulationResult {
	out := *r
	out.TimesInDays = pick(r.TimesInDays, idx)
	out.OxygenPct = pick(r.OxygenPct, idx)
	out.CarbonDioxidePct = pick(r.CarbonDioxidePct, idx)
	out.EthylenePPM = pick(r.EthylenePPM, idx)
	out.UnscavengedEthylenePPM = pick(r.UnscavengedEthylenePPM, idx)
	return &out
}

// Downsample is Sample over EvenIndices.
func (r *SimulationResult) Downsample(points int) *SimulationResult {
	return r.Sample(EvenIndices(r.Len(), points))
}

func pick(s []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = s[j]
	}
	return out
}
