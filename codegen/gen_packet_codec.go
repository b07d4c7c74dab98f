//go:build ignore

// gen_packet_codec writes zz_generated_codec.go for a packet directory.
//
// Usage: go run gen_packet_codec.go -- path/to/dir
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gstoney/advance/internal/codecgen"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}
	dir := os.Args[len(os.Args)-1]

	src, err := codecgen.Generate(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := filepath.Join(dir, "zz_generated_codec.go")
	if err := os.WriteFile(out, src, 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("Generated %s\n", out)
}
