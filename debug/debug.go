package debug

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	All     bool
	Write   bool
	Read    bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.All = boolEnv("XSER_DEBUG")
	d.Write = boolEnv("XSER_DEBUG_WRITE")
	d.Read = boolEnv("XSER_DEBUG_READ")
	d.Convert = boolEnv("XSER_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Write() bool {
	return d.All || d.Write
}
func Read() bool {
	return d.All || d.Read
}
func Convert() bool {
	return d.All || d.Convert
}

// Enabled reports whether any debug switch is on.
func Enabled() bool {
	return d.All || d.Write || d.Read || d.Convert
}

// Areas of the library that log.
const (
	AreaWrite   = "write"
	AreaRead    = "read"
	AreaConvert = "convert"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Logger returns a debug level logger on stderr for area when XSER_DEBUG
// or the area's own switch is set, and a logger that drops everything
// otherwise.
func Logger(area string) *slog.Logger {
	on := false
	switch area {
	case AreaWrite:
		on = Write()
	case AreaRead:
		on = Read()
	case AreaConvert:
		on = Convert()
	default:
		on = Enabled()
	}
	if !on {
		return discard
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("area", area)
}
