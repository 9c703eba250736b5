// Command motif compiles a protein motif pattern and searches sequences
// for it, reporting match offsets or spans per FASTA record.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/coregx/motif"
	"github.com/coregx/motif/internal/fasta"
)

// version can be overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	patternFlag := flag.String("pattern", "", "motif pattern, e.g. K-I-T(2)-Y.")
	inFlag := flag.String("in", "", "input FASTA path (empty or - reads stdin)")
	seqFlag := flag.String("seq", "", "raw amino acid sequence (alternative to -in)")
	allFlag := flag.Bool("all", false, "report every matching span instead of the first match")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("motif", version)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "motif",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *patternFlag == "" {
		logger.Fatal("missing required -pattern")
	}
	pat, err := motif.Compile(*patternFlag)
	if err != nil {
		logger.Fatal("invalid pattern", "err", err)
	}
	logger.Debug("compiled pattern", "pattern", pat.String())

	records, err := loadRecords(*seqFlag, *inFlag)
	if err != nil {
		logger.Fatal("reading input", "err", err)
	}
	logger.Debug("loaded input", "records", len(records))

	hits := 0
	for _, rec := range records {
		if *allFlag {
			for _, loc := range pat.FindAllString(rec.Sequence) {
				fmt.Printf("%s\t%d\t%d\n", rec.Header, loc.Start, loc.End)
				hits++
			}
			continue
		}
		if offset := pat.FindString(rec.Sequence); offset >= 0 {
			fmt.Printf("%s\t%d\n", rec.Header, offset)
			hits++
		}
	}
	logger.Debug("search complete", "records", len(records), "hits", hits)
}

// loadRecords builds the record list from either a raw sequence literal
// or a FASTA stream (file or stdin).
func loadRecords(rawSeq, path string) ([]fasta.Record, error) {
	if rawSeq != "" {
		return []fasta.Record{{Header: "seq", Sequence: rawSeq}}, nil
	}

	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return fasta.Parse(f)
	}
	return fasta.Parse(in)
}
