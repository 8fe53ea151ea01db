package rnxconv

/*------------------------------------------------------------------------------
* options.go : key/value option store for driver-supplied configuration
*
* notes : argument parsing itself is an external collaborator; this file
*         only defines the table the core reads through, modeled on
*         gnssgo/options.go's Opt/SysOpts table.
*-----------------------------------------------------------------------------*/

import "strconv"

// optFormat mirrors gnssgo's Opt.Format tag (0:int,1:float,2:string,3:bool).
type optFormat byte

const (
	fmtInt optFormat = iota
	fmtFloat
	fmtString
	fmtBool
)

type option struct {
	format  optFormat
	ival    int
	fval    float64
	sval    string
	bval    bool
	comment string
}

// Config is a table of named, typed, defaulted options. The core never
// reads a process-wide location; every component that needs
// configuration receives a *Config explicitly.
type Config struct {
	opts map[string]*option
}

// NewConfig returns an empty option table.
func NewConfig() *Config {
	return &Config{opts: make(map[string]*option)}
}

// DefineInt registers an integer option with its default and a one-line
// comment (shown by a CLI driver's -help output).
func (c *Config) DefineInt(name string, def int, comment string) {
	c.opts[name] = &option{format: fmtInt, ival: def, comment: comment}
}

// DefineFloat registers a float64 option.
func (c *Config) DefineFloat(name string, def float64, comment string) {
	c.opts[name] = &option{format: fmtFloat, fval: def, comment: comment}
}

// DefineString registers a string option.
func (c *Config) DefineString(name string, def string, comment string) {
	c.opts[name] = &option{format: fmtString, sval: def, comment: comment}
}

// DefineBool registers a boolean option.
func (c *Config) DefineBool(name string, def bool, comment string) {
	c.opts[name] = &option{format: fmtBool, bval: def, comment: comment}
}

// Set parses str into the named option according to its declared format.
// Unknown names are reported via log rather than failing the call, since
// an unrecognized option in a driver's config file should not abort a
// conversion in progress.
func (c *Config) Set(name, str string, log *Logger) {
	o, ok := c.opts[name]
	if !ok {
		log.Warnf("rnxconv: unknown option %q\n", name)
		return
	}
	var err error
	switch o.format {
	case fmtInt:
		o.ival, err = strconv.Atoi(str)
	case fmtFloat:
		o.fval, err = strconv.ParseFloat(str, 64)
	case fmtString:
		o.sval = str
	case fmtBool:
		o.bval, err = strconv.ParseBool(str)
	}
	if err != nil {
		log.Warnf("rnxconv: bad value %q for option %q: %v\n", str, name, err)
	}
}

// Int returns the current value of an integer option (0 if undefined).
func (c *Config) Int(name string) int {
	if o, ok := c.opts[name]; ok {
		return o.ival
	}
	return 0
}

// Float returns the current value of a float option (0 if undefined).
func (c *Config) Float(name string) float64 {
	if o, ok := c.opts[name]; ok {
		return o.fval
	}
	return 0
}

// String returns the current value of a string option ("" if undefined).
func (c *Config) String(name string) string {
	if o, ok := c.opts[name]; ok {
		return o.sval
	}
	return ""
}

// Bool returns the current value of a boolean option (false if undefined).
func (c *Config) Bool(name string) bool {
	if o, ok := c.opts[name]; ok {
		return o.bval
	}
	return false
}

// DefaultConfig returns the option table the dispatcher and writer expect
// to find populated, with the defaults a driver would otherwise have to
// repeat.
func DefaultConfig() *Config {
	c := NewConfig()
	c.DefineInt("min-nsv", 4, "minimum satellites in a MID 2 fix to accept it")
	c.DefineBool("apply-clock-bias", true, "reduce pseudorange/phase/doppler by the receiver clock bias")
	c.DefineBool("glonass-hamming", false, "verify GLONASS string Hamming code (elided pending ICD cross-check, see DESIGN.md)")
	c.DefineInt("sync-patience", 4096, "bytes tolerated while resynchronizing a framed OSP stream")
	c.DefineFloat("target-rinex-version", 302, "RINEX version to emit: 210 or 302")
	return c
}
