package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pool  bool
	Trees bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pool = boolEnv("BSX_DEBUG_POOL")
	d.Trees = boolEnv("BSX_DEBUG_TREES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Pool() bool {
	return d.Pool
}
func Trees() bool {
	return d.Trees
}
