// Command osp2rtk converts a SiRF OSP message stream into an RTK
// position-solution (".pos") text file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

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

const (
	midPosition = 2
	midReceiver = 19
)

type cmdOpt struct {
	input     string
	stripped  string
	outPath   string
	program   string
	minNsv    int
	verbosity int
}

func parseArgs() (cmdOpt, error) {
	var a cmdOpt
	flag.StringVar(&a.input, "i", "", "input OSP byte stream (required)")
	flag.StringVar(&a.stripped, "frame", "framed", "input framing: \"framed\" (A0A2...B0B3) or \"stripped\" ({len,payload})")
	flag.StringVar(&a.outPath, "o", "", "output .pos file (required)")
	flag.StringVar(&a.program, "program", "rnxconv", "program name recorded in the solution header")
	flag.IntVar(&a.minNsv, "min-nsv", 4, "minimum satellites in a MID 2 fix to accept it")
	flag.IntVar(&a.verbosity, "log-level", rnxconv.LevelWarn, "log verbosity: 1 error, 2 warning, 3 info, 4 trace")
	flag.Parse()

	if a.input == "" || a.outPath == "" {
		return a, fmt.Errorf("-i and -o are both required")
	}
	if a.stripped != "framed" && a.stripped != "stripped" {
		return a, fmt.Errorf("-frame must be \"framed\" or \"stripped\", got %q", a.stripped)
	}
	return a, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	args, err := parseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rtk: %v\n", err)
		flag.Usage()
		return exitBadArgs
	}

	src, err := rnxconv.OpenFileSource(args.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rtk: cannot open input: %v\n", err)
		return exitCannotOpenInput
	}
	defer src.Close()

	out, err := os.Create(args.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "osp2rtk: cannot create output: %v\n", err)
		return exitCannotOpenOutput
	}
	defer out.Close()

	logCounter := &levelCountingWriter{w: os.Stderr}
	log := rnxconv.NewLogger(logCounter, args.verbosity)

	cfg := rnxconv.DefaultConfig()
	cfg.Set("min-nsv", fmt.Sprint(args.minNsv), log)

	rtkSink := rnxconv.NewRtkSolSink(out, rnxconv.RtkSolOptions{Program: args.program, InputFile: args.input})
	dispatcher := rnxconv.NewDispatcher(cfg, log, rtkSink, "")

	var reader rnxconv.FrameReader
	if args.stripped == "stripped" {
		reader = rnxconv.NewStrippedReader(src)
	} else {
		reader = rnxconv.NewFramedReader(src, 4096)
	}

	frames, mid2Frames, dispatchErrs := 0, 0, 0
	for {
		payload, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Warnf("osp2rtk: frame read error: %v\n", err)
			dispatchErrs++
			if dispatchErrs > frames+16 {
				break
			}
			continue
		}
		frames++
		if len(payload) == 0 {
			continue
		}

		switch payload[0] {
		case midReceiver:
			elev, snr, err := parseMID19Masks(payload[1:])
			if err != nil {
				log.Warnf("osp2rtk: MID19 %v\n", err)
				dispatchErrs++
				continue
			}
			rtkSink.SetMasks(elev, snr)
			continue
		case midPosition:
			mid2Frames++
		}

		if err := dispatcher.Dispatch(payload); err != nil {
			log.Warnf("osp2rtk: dispatch error: %v\n", err)
			dispatchErrs++
		}
	}

	switch {
	case mid2Frames == 0:
		fmt.Fprintln(os.Stderr, "osp2rtk: no MID 2 position solutions were found in the input")
		return exitCannotOpenOutput
	case rtkSink.FixesWritten == 0:
		fmt.Fprintln(os.Stderr, "osp2rtk: every position solution had fewer than -min-nsv satellites")
		return exitFilterRejectsAll
	case frames > 0 && logCounter.warnings*2 > frames:
		fmt.Fprintln(os.Stderr, "osp2rtk: epoch-level format errors dominated the input")
		return exitErrorsDominate
	}
	if logCounter.errs > 0 {
		return exitWriteError
	}
	return exitOK
}

// parseMID19Masks decodes a MID 19 (receiver parameters) payload's
// elevation/SNR mask fields, following GNSSdataFromOSP::getMID19Masks:
// skip from SubID through DOPmask (1+2+3*1+2+6*1+4+1 = 19 bytes), then
// a 2-byte elevation mask in tenths of a degree and a 1-byte SNR mask
// in dB-Hz.
func parseMID19Masks(body []byte) (elevDeg, snrDbHz float64, err error) {
	c := rnxconv.NewCursor(body)
	if err := c.Skip(19); err != nil {
		return 0, 0, err
	}
	elev, err := c.U2()
	if err != nil {
		return 0, 0, err
	}
	snr, err := c.U1()
	if err != nil {
		return 0, 0, err
	}
	return float64(elev) / 10.0, float64(snr), nil
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
