package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve  bool
	Expand   bool
	Validate bool
	Schema   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("HED_DEBUG_RESOLVE")
	d.Expand = boolEnv("HED_DEBUG_EXPAND")
	d.Validate = boolEnv("HED_DEBUG_VALIDATE")
	d.Schema = boolEnv("HED_DEBUG_SCHEMA")
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
func Expand() bool {
	return d.Expand
}
func Validate() bool {
	return d.Validate
}
func Schema() bool {
	return d.Schema
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
