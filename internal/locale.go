package internal

import "os"

// localeEnvVars are checked in order; LC_MONETARY is the most specific for currency
var localeEnvVars = []string{"LC_MONETARY", "LC_ALL", "LANG"}

// detectSystemLocale returns the first usable locale from the environment, or "".
// "C" and "POSIX" carry no region and are skipped.
func detectSystemLocale() string {
	for _, envVar := range localeEnvVars {
		locale := os.Getenv(envVar)
		if locale != "" && locale != "C" && locale != "POSIX" {
			return locale
		}
	}
	return ""
}
