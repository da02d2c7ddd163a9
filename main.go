package main

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/travigo/transitnet/pkg/netformat"
)

// Dumps every record of a network document without resolving references,
// which helps when the assembler rejects a file.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: main NETWORK_FILE")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sections := []netformat.Section{netformat.SectionStops, netformat.SectionRoutes, netformat.SectionVehicles}
	section := 0
	remaining := -1

	scanner := bufio.NewScanner(f)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if section >= len(sections) {
			log.Fatalf("Line %d: content after the vehicle section: %q", lineNumber, line)
		}

		if remaining < 0 {
			remaining, err = strconv.Atoi(strings.TrimSpace(line))
			if err != nil || remaining < 0 {
				log.Fatalf("Line %d: bad %s count: %q", lineNumber, sections[section], line)
			}
			log.Printf("Found %d %s", remaining, sections[section])
		} else {
			var record interface{}
			switch sections[section] {
			case netformat.SectionStops:
				record, err = netformat.ParseStopRecord(line)
			case netformat.SectionRoutes:
				record, err = netformat.ParseRouteRecord(line)
			case netformat.SectionVehicles:
				record, err = netformat.ParseVehicleRecord(line)
			}
			if err != nil {
				log.Fatalf("Line %d: %s", lineNumber, err)
			}

			pretty.Println(record)
			remaining--
		}

		if remaining == 0 {
			section++
			remaining = -1
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading document: %s", err)
	}
}
