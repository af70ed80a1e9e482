package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// thousandsGrouped matches "1,000" and "-12,345,678" but not "1,5" or "1,0000"
var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+$`)

// Field keys understood by ParametersFromFields
const (
	FieldInitial = "initial"
	FieldMonthly = "monthly"
	FieldRate    = "rate"
	FieldYears   = "years"
)

// ParseAmount converts user input into a number. Empty or non-numeric input is 0.
// "_" and spaces are thousands separators. A "," is a thousands separator when
// the number also has a "." or when every comma group has exactly three digits;
// otherwise it is a decimal separator.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.NewReplacer("_", "", " ", "", "\u00a0", "").Replace(s)
	// "1,5" is a decimal comma, "1,000" and "1,000.5" use comma for thousands
	if strings.Contains(s, ".") || thousandsGrouped.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseYears converts user input into a whole number of years, truncating fractions
func ParseYears(s string) int {
	v := ParseAmount(s)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}

// ParametersFromFields decodes an ordered list of input fields by key.
// Order has no effect on the result; unknown keys are ignored and
// a repeated key resolves to its last occurrence.
func ParametersFromFields(fields []InputField) Parameters {
	var p Parameters
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f.Key)) {
		case FieldInitial:
			p.Initial = ParseAmount(f.Value)
		case FieldMonthly:
			p.Monthly = ParseAmount(f.Value)
		case FieldRate:
			p.RatePercent = ParseAmount(f.Value)
		case FieldYears:
			p.Years = ParseYears(f.Value)
		}
	}
	return p
}

// DefaultFields returns the input form in its default order and values
func DefaultFields() []InputField {
	return []InputField{
		{Key: FieldInitial, Label: "Initial amount", Value: "0"},
		{Key: FieldMonthly, Label: "Monthly amount", Value: "100"},
		{Key: FieldRate, Label: "Annual interest rate (%)", Value: "7"},
		{Key: FieldYears, Label: "Years", Value: "40"},
	}
}
