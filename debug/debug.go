package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Assign  bool
	Call    bool
	Expand  bool
	Cache   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("LOOM_DEBUG_RESOLVE")
	d.Assign = boolEnv("LOOM_DEBUG_ASSIGN")
	d.Call = boolEnv("LOOM_DEBUG_CALL")
	d.Expand = boolEnv("LOOM_DEBUG_EXPAND")
	d.Cache = boolEnv("LOOM_DEBUG_CACHE")
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
func Assign() bool {
	return d.Assign
}
func Call() bool {
	return d.Call
}
func Expand() bool {
	return d.Expand
}
func Cache() bool {
	return d.Cache
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
