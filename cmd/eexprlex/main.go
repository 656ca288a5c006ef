// Command eexprlex lexes a single eexpr source file and prints its token
// and diagnostic streams as JSON. It does nothing beyond that: no cooking
// pass, no expression evaluation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eexpr-lang/eexpr/lexer"
)

func main() {
	log.SetFlags(0)

	path := flag.String("file", "", "Path to the eexpr source file to lex")
	flag.Parse()

	if *path == "" {
		log.Fatal("Error: -file flag is required")
	}

	src, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *path, err)
	}

	result := lexer.Lex(src, *path)

	output := map[string]interface{}{
		"file":              *path,
		"tokens":            result.Tokens,
		"errors":            result.Errors,
		"discoveredNewline": result.DiscoveredNewline.String(),
		"discoveredIndent":  result.DiscoveredIndent,
	}
	if result.Fatal != nil {
		output["fatal"] = result.Fatal
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("Error marshalling output to JSON: %v", err)
	}
	fmt.Println(string(encoded))
}
