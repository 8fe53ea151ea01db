package rnxconv

/*------------------------------------------------------------------------------
* stream.go : byte source abstraction for live and file-based OSP input
*
* notes : serial-port I/O is an external collaborator; this file only
*         defines the ByteSource interface the core consumes and the two
*         concrete sources a CLI driver wires up.
*-----------------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	serial "github.com/tarm/goserial"
)

// FileSource reads OSP bytes from an already-open file, matching
// gnssgo/stream.go's STR_FILE mode.
type FileSource struct {
	f *os.File
	r *bufio.Reader
}

// OpenFileSource opens path for reading.
func OpenFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{f: f, r: bufio.NewReaderSize(f, 64*1024)}, nil
}

func (s *FileSource) ReadByte() (byte, error)    { return s.r.ReadByte() }
func (s *FileSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *FileSource) Close() error               { return s.f.Close() }

var supportedBaud = []int{300, 600, 1200, 2400, 4800, 9600, 19200, 38400,
	57600, 115200, 230400, 460800, 921600}

// SerialSource reads OSP bytes from a live receiver over a serial port,
// matching gnssgo/stream.go's STR_SERIAL mode via tarm/goserial. Path
// syntax is "<device>:<baud>", e.g. "/dev/ttyUSB0:115200"; baud defaults
// to 9600 when omitted.
type SerialSource struct {
	port serialPort
	r    *bufio.Reader
}

// serialPort narrows the goserial interface to what ByteSource needs,
// so tests can substitute a fake without opening a real device.
type serialPort interface {
	Read(p []byte) (int, error)
	Close() error
}

// OpenSerialSource opens the named serial device at the line speed
// encoded in path.
func OpenSerialSource(path string) (*SerialSource, error) {
	device := path
	baud := 9600
	if idx := strings.IndexByte(path, ':'); idx >= 0 {
		device = path[:idx]
		fmt.Sscanf(path[idx+1:], "%d", &baud)
	}
	i := sort.SearchInts(supportedBaud, baud)
	if i >= len(supportedBaud) || supportedBaud[i] != baud {
		return nil, fmt.Errorf("rnxconv: unsupported baud rate %d", baud)
	}
	cfg := &serial.Config{Name: device, Baud: baud}
	p, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, err
	}
	return &SerialSource{port: p, r: bufio.NewReaderSize(p, 4096)}, nil
}

func (s *SerialSource) ReadByte() (byte, error)    { return s.r.ReadByte() }
func (s *SerialSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *SerialSource) Close() error               { return s.port.Close() }
