package internal

import "math"

// InterestMultiplier returns interest earned per unit contributed, or 0 when
// nothing was contributed or the ratio is not finite.
func InterestMultiplier(s YearlySnapshot) float64 {
	if s.TotalContributions == 0 {
		return 0
	}
	m := s.InterestEarned / s.TotalContributions
	if !finite(m) {
		return 0
	}
	return m
}

// EffectiveAnnualRate returns, in percent, the constant yearly rate that turns
// the total contributions into the final balance over the given number of years.
//
// This treats every contribution as if it had been invested on day one, so it
// understates the real return of a savings plan. It is not an IRR/XIRR and
// should be labelled as an approximation wherever it is shown.
func EffectiveAnnualRate(s YearlySnapshot, years int) float64 {
	if s.TotalContributions == 0 || years <= 0 {
		return 0
	}
	rate := (math.Pow(s.Balance/s.TotalContributions, 1/float64(years)) - 1) * 100
	if !finite(rate) {
		return 0
	}
	return rate
}

// Summarize derives the summary metrics from the last snapshot
func Summarize(snapshots []YearlySnapshot) Summary {
	if len(snapshots) == 0 {
		return Summary{}
	}
	last := snapshots[len(snapshots)-1]
	return Summary{
		Final:               last,
		InterestMultiplier:  InterestMultiplier(last),
		EffectiveAnnualRate: EffectiveAnnualRate(last, last.Year),
	}
}
