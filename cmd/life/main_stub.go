//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of life requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life`, or build for the browser with")
	fmt.Fprintln(os.Stderr, "`GOOS=js GOARCH=wasm go build -tags ebiten -o life.wasm ./cmd/life`.")
	os.Exit(2)
}
