// Command osp2rnx converts a SiRF OSP message stream into a RINEX
// observation/navigation file pair.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"rnxconv/rnxconv"
)

// Exit codes mirror the fixed mapping the core's driver layer promises:
// 0 success, 1 bad arguments, 2 cannot open input, 3 cannot create output
// or no epochs, 4 filter rejects all data, 5 epoch-level format errors
// dominate, 6 output-write error, 7 internal consistency failure.
const (
	exitOK               = 0
	exitBadArgs          = 1
	exitCannotOpenInput  = 2
	exitCannotOpenOutput = 3
	exitFilterRejectsAll = 4
	exitErrorsDominate   = 5
	exitWriteError       = 6
	exitInternal         = 7
)

type cmdOpt struct {
	input      string
	stripped   bool
	obsPath    string
	navPath    string
	version    int
	marker     string
	runBy      string
	observer   string
	agency     string
	minNsv     int
	noBias     bool
	sysSat     string
	obsCodes   string
	syncPatien int
	verbosity  int
}

func parseArgs() (cmdOpt, error) {
	var a cmdOpt
	flag.StringVar(&a.input, "i", "", "input OSP byte stream (required)")
	flag.BoolVar(&a.stripped, "stripped", false, "input is a stripped {len,payload} file rather than a framed A0A2...B0B3 stream")
	flag.StringVar(&a.obsPath, "obs", "", "output RINEX observation file (required)")
	flag.StringVar(&a.navPath, "nav", "", "output RINEX navigation file (required)")
	flag.IntVar(&a.version, "v", 302, "target RINEX version: 210 or 302")
	flag.StringVar(&a.marker, "marker", "", "MARKER NAME header value")
	flag.StringVar(&a.runBy, "runby", "rnxconv", "PGM / RUN BY / DATE header value")
	flag.StringVar(&a.observer, "observer", "", "OBSERVER / AGENCY observer field")
	flag.StringVar(&a.agency, "agency", "", "OBSERVER / AGENCY agency field")
	flag.IntVar(&a.minNsv, "min-nsv", 4, "minimum satellites in a MID 2 fix to accept it")
	flag.BoolVar(&a.noBias, "no-clock-bias", false, "do not reduce pseudorange/phase/doppler by the receiver clock bias")
	flag.StringVar(&a.sysSat, "sys", "", "comma-separated system/satellite filter tokens, e.g. G,R05")
	flag.StringVar(&a.obsCodes, "obs-codes", "", "comma-separated system:observable filter tokens, e.g. G:C1C,L1C")
	flag.IntVar(&a.syncPatien, "sync-patience", 4096, "bytes tolerated while resynchronizing a framed OSP stream")
	flag.IntVar(&a.verbosity, "log-level", rnxconv.LevelWarn, "log verbosity: 1 error, 2 warning, 3 info, 4 trace")
	flag.Parse()

	if a.input == "" || a.obsPath == "" || a.navPath == "" {
		return a, fmt.Errorf("-i, -obs and -nav are all required")
	}
	if a.version != 210 && a.version != 302 {
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
		fmt.Fprintf(os.Stderr, "osp2rnx: %v\n", err)
		flag.Usage()
		return exitBadArgs
	}

	src, err := rnxconv.OpenFileSource(args.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rnx: cannot open input: %v\n", err)
		return exitCannotOpenInput
	}
	defer src.Close()

	obsFile, err := os.Create(args.obsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rnx: cannot create observation output: %v\n", err)
		return exitCannotOpenOutput
	}
	defer obsFile.Close()
	navFile, err := os.Create(args.navPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rnx: cannot create navigation output: %v\n", err)
		return exitCannotOpenOutput
	}
	defer navFile.Close()

	logCounter := &levelCountingWriter{w: os.Stderr}
	log := rnxconv.NewLogger(logCounter, args.verbosity)

	cfg := rnxconv.DefaultConfig()
	cfg.Set("min-nsv", fmt.Sprint(args.minNsv), log)
	cfg.Set("apply-clock-bias", fmt.Sprint(!args.noBias), log)
	cfg.Set("sync-patience", fmt.Sprint(args.syncPatien), log)

	version := rnxconv.V302
	if args.version == 210 {
		version = rnxconv.V210
	}
	opt := rnxconv.RinexWriterOptions{
		Program:  args.runBy,
		RunBy:    args.runBy,
		Marker:   args.marker,
		Observer: args.observer,
		Agency:   args.agency,
	}
	sink := rnxconv.NewRinexSink(obsFile, navFile, version, opt)
	if args.sysSat != "" || args.obsCodes != "" {
		sats := splitNonEmpty(args.sysSat)
		codes := splitNonEmpty(args.obsCodes)
		if !sink.ObsModel.SetFilter(sats, codes, log) {
			log.Warnf("osp2rnx: one or more filter tokens were rejected\n")
		}
		sink.NavModel.SetFilter(sats, nil, log)
	}

	dispatcher := rnxconv.NewDispatcher(cfg, log, sink, args.marker)

	var reader rnxconv.FrameReader
	if args.stripped {
		reader = rnxconv.NewStrippedReader(src)
	} else {
		reader = rnxconv.NewFramedReader(src, args.syncPatien)
	}

	frames, dispatchErrs := 0, 0
	for {
		payload, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Warnf("osp2rnx: frame read error: %v\n", err)
			dispatchErrs++
			if dispatchErrs > frames+16 {
				break
			}
			continue
		}
		frames++
		if err := dispatcher.Dispatch(payload); err != nil {
			log.Warnf("osp2rnx: dispatch error: %v\n", err)
			dispatchErrs++
		}
	}

	switch {
	case sink.EpochsIn == 0:
		fmt.Fprintln(os.Stderr, "osp2rnx: no epochs were produced from the input")
		return exitCannotOpenOutput
	case sink.EpochsOut == 0:
		fmt.Fprintln(os.Stderr, "osp2rnx: the configured filter rejected every observation")
		return exitFilterRejectsAll
	case frames > 0 && logCounter.warnings*2 > frames:
		fmt.Fprintln(os.Stderr, "osp2rnx: epoch-level format errors dominated the input")
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

// levelCountingWriter tallies the leveled log lines rnxconv.Logger writes
// (each line is prefixed by its numeric level, see log.go) so the driver
// can decide whether errors/warnings dominated the run.
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
