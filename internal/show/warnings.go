package show

import "sort"

// warningSet records the ticks at which a warning was observed.
type warningSet map[int]struct{}

func (w warningSet) has(t int) bool {
	_, ok := w[t]
	return ok
}

func (w warningSet) add(t int) {
	w[t] = struct{}{}
}

func (w warningSet) sorted() []int {
	ticks := make([]int, 0, len(w))
	for t := range w {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)
	return ticks
}

// countRuns counts the maximal runs of consecutive integers in sorted, distinct ticks.
func countRuns(ticks []int) int {
	if len(ticks) <= 1 {
		return len(ticks)
	}
	runs := 1
	for i := 1; i < len(ticks); i++ {
		if ticks[i]-ticks[i-1] > 1 {
			runs++
		}
	}
	return runs
}
