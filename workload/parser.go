// Package workload parses the miniature shell-like workload description
// into job declarations. Parsing is a pure function with no scheduler
// knowledge; the caller feeds the result to the scheduler in order, which
// fixes the initial FIFO order at the highest level.
package workload

import (
	"strconv"
	"strings"
)

// DefaultWorkload is used when the process is started without a workload
// argument.
const DefaultWorkload = "spin 10000 &; spin 200000 &; spin 3000000 &;"

// SpinCommand is the only command the mini-language knows: a CPU-bound job
// that spins for a given number of milliseconds.
const SpinCommand = "spin"

// Decl declares one job: a display name and its total work in milliseconds.
type Decl struct {
	Name   string
	WorkMs int
}

// Parse scans text for `spin <integer>` declarations separated by `;`.
// `&` and extra whitespace are tolerated and ignored. Malformed entries
// (unknown commands, missing or non-positive work) are skipped silently;
// they declare no job and produce no error.
func Parse(text string) []Decl {
	var decls []Decl
	for _, stmt := range strings.Split(text, ";") {
		fields := strings.Fields(strings.ReplaceAll(stmt, "&", " "))
		if len(fields) < 2 || fields[0] != SpinCommand {
			continue
		}
		ms, err := strconv.Atoi(fields[1])
		if err != nil || ms <= 0 {
			continue
		}
		decls = append(decls, Decl{Name: SpinCommand, WorkMs: ms})
	}
	return decls
}
