// Standalone tool that checks a save file's integrity digest and, with
// -restamp, rewrites it after manual edits during development.
//
// Usage: go run scripts/verify-save.go [-restamp] <save.json>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/castaway-games/angler/internal/repositories/gamestate"
)

func main() {
	restamp := flag.Bool("restamp", false, "recompute and store the checksum")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: verify-save [-restamp] <save.json>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("failed to read save file: ", err)
	}

	var doc gamestate.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatal("save file is not valid JSON: ", err)
	}

	want, err := gamestate.ComputeChecksum(&doc)
	if err != nil {
		log.Fatal("failed to compute checksum: ", err)
	}

	switch {
	case doc.Checksum == want:
		fmt.Println("OK: checksum verifies")
	case *restamp:
		doc.Checksum = want
		out, err := json.MarshalIndent(&doc, "", "  ")
		if err != nil {
			log.Fatal("failed to serialize save file: ", err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			log.Fatal("failed to write save file: ", err)
		}
		fmt.Println("restamped:", want)
	default:
		fmt.Println("MISMATCH")
		fmt.Println("  stored:  ", doc.Checksum)
		fmt.Println("  computed:", want)
		os.Exit(1)
	}
}
