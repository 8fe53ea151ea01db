// Command rnx2rnx reads a RINEX observation file, optionally applies a
// satellite/observable filter, and re-emits it, optionally at a different
// RINEX version.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"rnxconv/rnxconv"
)

const (
	exitOK               = 0
	exitBadArgs          = 1
	exitCannotOpenInput  = 2
	exitCannotOpenOutput = 3
	exitFilterRejectsAll = 4
	exitErrorsDominate   = 5
	exitWriteError       = 6
)

type cmdOpt struct {
	input     string
	output    string
	version   int
	marker    string
	runBy     string
	sysSat    string
	obsCodes  string
	verbosity int
}

func parseArgs() (cmdOpt, error) {
	var a cmdOpt
	flag.StringVar(&a.input, "i", "", "input RINEX observation file (required)")
	flag.StringVar(&a.output, "o", "", "output RINEX observation file (required)")
	flag.IntVar(&a.version, "v", 0, "target RINEX version: 210 or 302, default keeps the input's version")
	flag.StringVar(&a.marker, "marker", "", "MARKER NAME header value, default keeps the input's value")
	flag.StringVar(&a.runBy, "runby", "rnxconv", "PGM / RUN BY / DATE header value")
	flag.StringVar(&a.sysSat, "sys", "", "comma-separated system/satellite filter tokens, e.g. G,R05")
	flag.StringVar(&a.obsCodes, "obs-codes", "", "comma-separated system:observable filter tokens, e.g. G:C1C,L1C")
	flag.IntVar(&a.verbosity, "log-level", rnxconv.LevelWarn, "log verbosity: 1 error, 2 warning, 3 info, 4 trace")
	flag.Parse()

	if a.input == "" || a.output == "" {
		return a, fmt.Errorf("-i and -o are both required")
	}
	if a.version != 0 && a.version != 210 && a.version != 302 {
		return a, fmt.Errorf("-v must be 210 or 302, got %d", a.version)
	}
	return a, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	args, err := parseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rnx2rnx: %v\n", err)
		flag.Usage()
		return exitBadArgs
	}

	in, err := os.Open(args.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rnx2rnx: cannot open input: %v\n", err)
		return exitCannotOpenInput
	}
	defer in.Close()

	logCounter := &levelCountingWriter{w: os.Stderr}
	log := rnxconv.NewLogger(logCounter, args.verbosity)

	r := bufio.NewReader(in)
	m, err := rnxconv.ReadHeader(r, rnxconv.KindObs, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rnx2rnx: cannot parse header: %v\n", err)
		return exitCannotOpenInput
	}
	srcVersion := m.Version

	if args.sysSat != "" || args.obsCodes != "" {
		sats := splitNonEmpty(args.sysSat)
		codes := splitNonEmpty(args.obsCodes)
		if !m.SetFilter(sats, codes, log) {
			log.Warnf("rnx2rnx: one or more filter tokens were rejected\n")
		}
	}

	out, err := os.Create(args.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rnx2rnx: cannot create output: %v\n", err)
		return exitCannotOpenOutput
	}
	defer out.Close()

	opt := rnxconv.RinexWriterOptions{Program: args.runBy, RunBy: args.runBy}
	if args.marker != "" {
		m.SetHeader(rnxconv.LabelMarkName, args.marker)
	}
	if args.version != 0 {
		m.Version = rnxconv.RinexVersion(args.version)
	}
	if err := rnxconv.WriteObsHeader(out, m, opt); err != nil {
		fmt.Fprintf(os.Stderr, "rnx2rnx: cannot write header: %v\n", err)
		return exitWriteError
	}

	epochsRead, epochsWritten, badEpochs := 0, 0, 0
readLoop:
	for {
		t, epochFlag, sats, status := rnxconv.ReadObsEpoch(r, srcVersion)
		switch status {
		case rnxconv.EpochEndOfFile:
			break readLoop
		case rnxconv.EpochBadEpoch, rnxconv.EpochSpecialRecordError:
			badEpochs++
			continue
		}
		epochsRead++

		recs, err := rnxconv.ReadObsValues(r, m, srcVersion, sats, t)
		if err != nil {
			log.Warnf("rnx2rnx: epoch at %v: %v\n", t, err)
			badEpochs++
			continue
		}
		m.ClearObs()
		for _, rec := range recs {
			m.AddObs(rec)
		}
		m.SortObs()
		m.ApplyObsFilter()
		if len(m.Obs) == 0 {
			continue
		}
		if err := rnxconv.WriteObsEpoch(out, m, epochFlag); err != nil {
			fmt.Fprintf(os.Stderr, "rnx2rnx: cannot write epoch: %v\n", err)
			return exitWriteError
		}
		epochsWritten++
	}

	switch {
	case epochsRead == 0:
		fmt.Fprintln(os.Stderr, "rnx2rnx: the input contained no epochs")
		return exitCannotOpenOutput
	case epochsWritten == 0:
		fmt.Fprintln(os.Stderr, "rnx2rnx: the configured filter rejected every observation")
		return exitFilterRejectsAll
	case badEpochs*2 > epochsRead:
		fmt.Fprintln(os.Stderr, "rnx2rnx: epoch-level format errors dominated the input")
		return exitErrorsDominate
	}
	if logCounter.errs > 0 {
		return exitWriteError
	}
	return exitOK
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

type levelCountingWriter struct {
	w        *os.File
	warnings int
	errs     int
}

func (c *levelCountingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		switch p[0] {
		case '1':
			c.errs++
		case '2':
			c.warnings++
		}
	}
	return c.w.Write(p)
}
