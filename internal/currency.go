package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when neither the config, the flags nor the system locale name one
const DefaultCurrency = "USD"

// Currency formats money amounts for one currency in one locale
type Currency struct {
	Code    string // "SEK", "USD", "EUR"
	symbol  string
	prefix  bool
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"ISK": "kr",
}

// prefixCurrencies place the symbol before the amount.
// x/text/currency does not expose CLDR symbol placement, so this list is maintained by hand.
var prefixCurrencies = map[string]bool{
	"USD": true, "GBP": true, "JPY": true, "CAD": true, "AUD": true,
	"MXN": true, "HKD": true, "SGD": true, "NZD": true, "ZAR": true,
}

// defaultLocaleForCurrency is the "home" locale used when a currency is
// chosen explicitly and no system locale was detected
var defaultLocaleForCurrency = map[string]language.Tag{
	"SEK": language.Swedish,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
	"NOK": language.Norwegian,
	"DKK": language.Danish,
	"CHF": language.German,
	"JPY": language.Japanese,
	"CAD": language.CanadianFrench,
	"AUD": language.MustParse("en-AU"),
	"BRL": language.BrazilianPortuguese,
	"MXN": language.LatinAmericanSpanish,
	"INR": language.MustParse("en-IN"),
	"CNY": language.Chinese,
	"PLN": language.Polish,
	"NZD": language.MustParse("en-NZ"),
}

// detectedLocale is the system locale found by DetectSystemCurrency, if any
var detectedLocale language.Tag

// GetCurrency returns the Currency for a code, formatted in the detected
// system locale or else the currency's home locale.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))

	tag := language.English
	if detectedLocale != language.Und {
		tag = detectedLocale
	} else if t, ok := defaultLocaleForCurrency[code]; ok {
		tag = t
	}

	return GetCurrencyWithLocale(code, tag)
}

// GetCurrencyWithLocale returns a Currency with a specific locale for formatting.
// Unknown codes are kept and used verbatim as the symbol.
func GetCurrencyWithLocale(code string, tag language.Tag) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	printer := message.NewPrinter(tag)

	symbol, ok := symbolOverrides[code]
	if !ok {
		if unit, err := currency.ParseISO(code); err == nil {
			symbol = printer.Sprint(currency.NarrowSymbol(unit))
		} else {
			symbol = code
		}
	}

	return Currency{
		Code:    code,
		symbol:  symbol,
		prefix:  prefixCurrencies[code],
		printer: printer,
	}
}

// DetectSystemCurrency returns the currency of the system locale region, or "" if unknown.
// As a side effect the locale is remembered for formatting.
func DetectSystemCurrency() string {
	locale := detectSystemLocale()
	if locale == "" {
		return ""
	}

	currCode, tag := parseCurrencyFromLocale(locale)
	if currCode != "" {
		detectedLocale = tag
		return currCode
	}
	return ""
}

// ResolveCurrency picks the currency code: explicit flag, then config, then
// system locale, then DefaultCurrency.
func ResolveCurrency(flag string, cfg *Config) Currency {
	if flag != "" {
		return GetCurrency(flag)
	}
	if cfg != nil && cfg.Currency != "" {
		return GetCurrency(cfg.Currency)
	}
	if code := DetectSystemCurrency(); code != "" {
		return GetCurrency(code)
	}
	return GetCurrency(DefaultCurrency)
}

// parseCurrencyFromLocale extracts currency code and language tag from a locale string.
// Examples: "sv_SE.UTF-8" -> ("SEK", sv-SE), "pt_BR.UTF-8" -> ("BRL", pt-BR)
func parseCurrencyFromLocale(locale string) (string, language.Tag) {
	base := locale
	if idx := strings.IndexAny(base, ".@"); idx != -1 {
		base = base[:idx]
	}

	tag, err := language.Parse(strings.Replace(base, "_", "-", 1))
	if err != nil {
		return "", language.Und
	}

	region, conf := tag.Region()
	if conf != language.Exact || region.String() == "ZZ" {
		return "", language.Und
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", language.Und
	}

	return unit.String(), tag
}

// Format formats a whole amount with the currency symbol
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	if c.prefix {
		if amount < 0 {
			return "-" + c.symbol + strings.TrimPrefix(formatted, "-")
		}
		return c.symbol + formatted
	}
	return formatted + " " + c.symbol
}

// FormatPercent formats a percentage with up to two decimals in the currency's locale
func (c Currency) FormatPercent(pct float64) string {
	return c.printer.Sprint(number.Decimal(pct, number.MaxFractionDigits(2), number.MinFractionDigits(2))) + "%"
}

// FormatMultiplier formats a ratio such as an interest multiplier ("4.50x")
func (c Currency) FormatMultiplier(ratio float64) string {
	return c.printer.Sprint(number.Decimal(ratio, number.MaxFractionDigits(2), number.MinFractionDigits(2))) + "x"
}
