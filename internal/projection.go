package internal

import "math"

const monthsPerYear = 12

// MaxYears is the longest horizon Project accepts
const MaxYears = 1200

// Project simulates monthly compounding over years and returns one snapshot per year.
// Each month the contribution is deposited first and then the whole balance
// grows by ratePercent/12/100, so deposits compound in the month they are made.
// A parallel simple-interest balance is tracked without any compounding.
//
// Invalid input (years outside 1..MaxYears, negative or non-finite amounts)
// yields an empty result rather than an error; the function is meant to be
// re-run on every edit.
//
// If a value overflows float64, the projection ends with the last year whose
// values are all finite, so it may hold fewer than years snapshots.
func Project(initial, monthly, ratePercent float64, years int) []YearlySnapshot {
	if !(Parameters{Initial: initial, Monthly: monthly, RatePercent: ratePercent, Years: years}).Valid() {
		return nil
	}

	monthlyRate := ratePercent / monthsPerYear / 100
	annualRate := ratePercent / 100

	snapshots := make([]YearlySnapshot, 0, years)
	balance := initial
	for year := 1; year <= years; year++ {
		for month := 0; month < monthsPerYear; month++ {
			balance += monthly
			balance *= 1 + monthlyRate
		}

		y := float64(year)
		contributions := initial + monthly*monthsPerYear*y
		simpleInterest := (initial * annualRate * y) + (monthly * annualRate * y)

		total := math.Round(contributions)
		rounded := math.Round(balance)
		simple := math.Round(contributions + simpleInterest)
		if !finite(rounded) || !finite(total) || !finite(simple) {
			break
		}
		snapshots = append(snapshots, YearlySnapshot{
			Year:               year,
			Balance:            rounded,
			TotalContributions: total,
			InterestEarned:     rounded - total,
			SimpleBalance:      simple,
		})
	}

	return snapshots
}

// Project runs the projection for these parameters
func (p Parameters) Project() []YearlySnapshot {
	return Project(p.Initial, p.Monthly, p.RatePercent, p.Years)
}

// Valid reports whether the parameters produce a non-empty projection
func (p Parameters) Valid() bool {
	return p.Years > 0 && p.Years <= MaxYears && validAmount(p.Initial) && validAmount(p.Monthly) && validAmount(p.RatePercent)
}

func validAmount(v float64) bool {
	return v >= 0 && finite(v)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
