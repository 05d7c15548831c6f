//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "contactform only runs in the browser. Build the bundle with:")
	fmt.Fprintln(os.Stderr, "  GOOS=js GOARCH=wasm go build -o web/dist/contactform-dev.wasm ./web/contactform")
	fmt.Fprintln(os.Stderr, "  cat \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" web/contactform/loader.js > web/dist/contactform-dev.js")
	os.Exit(1)
}
