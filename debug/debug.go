// Package debug holds env-gated debug logging for tree operations.
// Set PROPTREE_DEBUG_RESOLVE, PROPTREE_DEBUG_SET or PROPTREE_DEBUG_MERGE
// to a true value to trace the corresponding operation on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Set     bool
	Merge   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("PROPTREE_DEBUG_RESOLVE")
	d.Set = boolEnv("PROPTREE_DEBUG_SET")
	d.Merge = boolEnv("PROPTREE_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Set() bool {
	return d.Set
}
func Merge() bool {
	return d.Merge
}
