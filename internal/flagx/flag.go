// Package flagx provides small helpers for command-line flag handling.
package flagx

import "strings"

// FilterArgs returns only the arguments belonging to the allowed flags,
// keeping their values when provided as a separate argument.
//
// Two forms are recognized:
//  1. Flag and value as separate arguments:  -d postgres://...
//  2. Flag and value combined with '=':      --database=postgres://...
//
// Everything else (unknown flags, positional arguments) is dropped. This
// lets a package parse its own flag subset without tripping over flags
// owned by other components.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" form
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// "-flag value" form; the value, if any, is the next argument
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
