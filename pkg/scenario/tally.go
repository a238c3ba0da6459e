package scenario

// Tally keeps running counts and averages over evaluated decisions.
type Tally struct {
	count     int
	offloaded int
	sumScore  float64
	sumLocalT float64
	sumLocalE float64
	sumOffT   float64
	sumOffE   float64
	best      *Decision
}

// Summary is the aggregate view of a Tally.
type Summary struct {
	Count     int
	Offloaded int
	MeanScore float64

	MeanLocalTimeS     float64
	MeanLocalEnergyJ   float64
	MeanOffloadTimeS   float64
	MeanOffloadEnergyJ float64

	Best string // name of the highest-scoring decision
}

// Add folds d into the running totals.
func (t *Tally) Add(d Decision) {
	t.count++
	if d.Offload {
		t.offloaded++
	}
	t.sumScore += d.Score
	t.sumLocalT += d.LocalTimeS
	t.sumLocalE += d.LocalEnergyJ
	t.sumOffT += d.OffloadTimeS
	t.sumOffE += d.OffloadEnergyJ

	if t.best == nil || d.Score > t.best.Score {
		b := d
		t.best = &b
	}
}

// Summary returns averages over all added decisions.
func (t *Tally) Summary() Summary {
	if t.count == 0 {
		return Summary{}
	}
	n := float64(t.count)
	return Summary{
		Count:              t.count,
		Offloaded:          t.offloaded,
		MeanScore:          t.sumScore / n,
		MeanLocalTimeS:     t.sumLocalT / n,
		MeanLocalEnergyJ:   t.sumLocalE / n,
		MeanOffloadTimeS:   t.sumOffT / n,
		MeanOffloadEnergyJ: t.sumOffE / n,
		Best:               t.best.Name,
	}
}
