package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config controls which demos run and how the CLI prints.
type Config struct {
	// Demos lists demo names to run. Empty means all of them.
	Demos   []string
	NoColor bool
	Verbose bool
}

// LoadFromEnv reads SOLID_DEMOS, SOLID_NO_COLOR (or NO_COLOR) and SOLID_VERBOSE.
//
// Unparseable booleans fall back to false. SOLID_DEMOS is a comma-separated
// list; an empty entry in it is an error.
func LoadFromEnv() (Config, error) {
	demos, err := getenvList("SOLID_DEMOS")
	if err != nil {
		return Config{}, err
	}
	return Config{
		Demos:   demos,
		NoColor: getenvBool("SOLID_NO_COLOR", false) || os.Getenv("NO_COLOR") != "",
		Verbose: getenvBool("SOLID_VERBOSE", false),
	}, nil
}

func getenvList(k string) ([]string, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return nil, nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%s: entry %d is empty", k, i+1)
		}
		out = append(out, p)
	}
	return out, nil
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
