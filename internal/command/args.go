// Where: cli-rt/internal/command/args.go
// What: Argument normalization before Kong parsing.
// Why: Let one -p flag take several space-separated packages.
package command

import "strings"

// expandPackageArgs rewrites "-p a b" into "-p a -p b" so every value
// following a packages flag, up to the next flag, is collected.
func expandPackageArgs(args []string) []string {
	out := make([]string, 0, len(args))
	collecting := false
	for _, arg := range args {
		switch {
		case arg == "--":
			collecting = false
			out = append(out, arg)
		case isPackagesFlag(arg) || strings.HasPrefix(arg, "--packages="):
			collecting = true
			out = append(out, arg)
		case strings.HasPrefix(arg, "-"):
			collecting = false
			out = append(out, arg)
		case collecting && len(out) > 0 && !isPackagesFlag(out[len(out)-1]):
			out = append(out, "--packages", arg)
		default:
			out = append(out, arg)
		}
	}
	return out
}

func isPackagesFlag(arg string) bool {
	return arg == "-p" || arg == "--packages"
}
