package pulse

import "fmt"

// assertf panics with a formatted message when cond is false and assertions
// are compiled in. With the pulseprod build tag the whole call reduces to a
// dead branch and misuse behavior is undefined.
func assertf(cond bool, format string, args ...any) {
	if !assertionsEnabled || cond {
		return
	}
	panic(fmt.Sprintf("pulse: "+format, args...))
}
