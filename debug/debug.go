package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Build    bool
	Sections bool
	Eval     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ASCCONV_DEBUG_PARSE")
	d.Build = boolEnv("ASCCONV_DEBUG_BUILD")
	d.Sections = boolEnv("ASCCONV_DEBUG_SECTIONS")
	d.Eval = boolEnv("ASCCONV_DEBUG_EVAL")
	d.Patch = boolEnv("ASCCONV_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Sections() bool {
	return d.Sections
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
