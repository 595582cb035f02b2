// Package flagx lets several config layers read their own flags from one
// command line without tripping over each other's definitions.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
// Both "-k value" and "-k=value" spellings are recognised; a following token
// that starts with "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	kept, _ := split(args, allowedFlags)
	return kept
}

// DropArgs is the complement of FilterArgs: it removes the named flags and
// their values, leaving everything else in order.
func DropArgs(args []string, flags []string) []string {
	_, rest := split(args, flags)
	return rest
}

func split(args []string, names []string) (matched, rest []string) {
	set := make(map[string]struct{}, len(names))
	for _, f := range names {
		set[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, hit := set[name]; hit {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, hit := set[arg]; !hit {
			rest = append(rest, arg)
			continue
		}
		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}
	return matched, rest
}

// ConfigPath returns the value of -c / -config from args, or "" when
// neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
