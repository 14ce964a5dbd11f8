package view

import "strings"

var labels = map[string]string{
	"100% 100%": "Stretch",
	"auto":      "Original",
	"0s":        "None",
	"0.15s":     "Fast",
	"0.3s":      "Normal",
	"0.5s":      "Slow",
	"0.8s":      "Very slow",
	"system-ui": "System",
}

// Label returns the display text of an option value.
func Label(value string) string {
	if l, ok := labels[value]; ok {
		return l
	}
	if value == "" {
		return ""
	}

	return strings.ToUpper(value[:1]) + value[1:]
}

func options(values []string, active string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: Label(v), Active: v == active})
	}

	return opts
}
