package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk   bool
	Commit bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("TREELIST_DEBUG_WALK")
	d.Commit = boolEnv("TREELIST_DEBUG_COMMIT")
	d.Query = boolEnv("TREELIST_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Commit() bool {
	return d.Commit
}
func Query() bool {
	return d.Query
}
