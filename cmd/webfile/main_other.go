//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "webfile must be built with GOOS=js GOARCH=wasm and run in a browser")
	os.Exit(1)
}
