package searcher

import "math"

// uct is winRate + c*sqrt(ln(N)/n) for a child visited n times under a parent
// visited N times. Unvisited children come first.
func uct(rewards float64, visits int, c float64, lnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	n := float64(visits)
	return rewards/n + c*math.Sqrt(lnN/n)
}
