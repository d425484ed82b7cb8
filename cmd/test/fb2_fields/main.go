// Test program for FB2 field extraction
//
// Usage:
//   go run ./cmd/test/fb2_fields/main.go <fb2-file-path> [template]
//
// Example:
//   go run ./cmd/test/fb2_fields/main.go ~/Downloads/book.fb2.zip "%authors#F #L% - %title%"
//
// This program will:
// - Open the FB2 file (plain or zipped)
// - Display the value of every template field, or the error it fails with
// - Resolve the optional template and show the resulting file name

package main

import (
	"fmt"
	"os"

	"github.com/yuanying/fb2rename/internal/fb2"
	"github.com/yuanying/fb2rename/internal/metadata"
	"github.com/yuanying/fb2rename/internal/pattern"
	"github.com/yuanying/fb2rename/internal/sanitize"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <fb2-file-path> [template]\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]

	fmt.Println("=== FB2 Field Extraction Test ===")
	fmt.Printf("File: %s\n\n", path)

	book, err := fb2.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening FB2: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ FB2 parsed successfully\n")
	fmt.Printf("Extension: %s\n\n", book.Extension())

	fmt.Println("--- Fields ---")
	for _, f := range metadata.Fields {
		v, err := book.Value(metadata.Placeholder{Raw: string(f), Field: f})
		if err != nil {
			fmt.Printf("%-11s ✗ %v\n", f, err)
			continue
		}
		fmt.Printf("%-11s %q\n", f, v)
	}

	if authors, err := book.Authors(); err == nil {
		fmt.Println("\n--- Authors ---")
		for i, a := range authors {
			fmt.Printf("  [%d] first=%q middle=%q last=%q\n", i+1, a.First, a.Middle, a.Last)
		}
	}

	if len(os.Args) < 3 {
		return
	}

	fmt.Println("\n--- Template ---")
	tmpl := pattern.Parse(os.Args[2])
	for _, p := range tmpl.Placeholders() {
		fmt.Printf("  %s field=%s subformat=%q\n", p.Token(), p.Field, p.Subformat)
	}
	name, err := tmpl.Resolve(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving template: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Resolved: %q\n", name)
	fmt.Printf("File name: %q\n", sanitize.Filename(name+book.Extension()))
}
