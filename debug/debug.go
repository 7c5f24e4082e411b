package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Write  bool
	Check  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("PYVOC_DEBUG_TOKENS")
	d.Parse = boolEnv("PYVOC_DEBUG_PARSE")
	d.Write = boolEnv("PYVOC_DEBUG_WRITE")
	d.Check = boolEnv("PYVOC_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Write() bool {
	return d.Write
}
func Check() bool {
	return d.Check
}
