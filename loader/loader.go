// Package loader reads line-oriented text files into caller-owned buffers.
//
// A Loader fills at most limit slots of the destination with the lines of the
// input, in order, and reports how many were filled. Extra lines are dropped
// silently: the buffer capacity is the policy, not an error.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	logger "github.com/metal3d/namesort/log"
)

// DefaultMax is the number of lines loaded when no maximum is configured.
const DefaultMax = 20

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrCapacity is returned when limit is negative or the destination is
	// shorter than limit.
	ErrCapacity = errors.New("destination too small for the line limit")
)

// Loader reads lines into a fixed capacity buffer.
type Loader struct {
	// Encoding is a charset label such as "latin1" or "windows-1252". When
	// empty, valid UTF-8 is read as is and anything else is detected.
	Encoding string
	// Logger defaults to the shared namesort logger.
	Logger *slog.Logger
}

// Load reads the file at path into dst[:limit] and returns the number of lines
// read. When the file cannot be opened the count is 0, dst is untouched and
// the error wraps ErrNotFound for a missing file. An empty file returns 0 and a
// nil error.
func (l *Loader) Load(path string, limit int, dst []string) (int, error) {
	if err := checkCapacity(limit, dst); err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	count, err := l.LoadFrom(file, limit, dst)
	if err != nil {
		return count, fmt.Errorf("read %s: %w", path, err)
	}
	logger.Or(l.Logger).Debug("lines loaded", "file", path, "count", count, "max", limit)
	return count, nil
}

// LoadFrom is Load over any reader. On a read error the lines read so far stay
// in dst and their count is returned with the error.
func (l *Loader) LoadFrom(r io.Reader, limit int, dst []string) (int, error) {
	if err := checkCapacity(limit, dst); err != nil {
		return 0, err
	}
	if limit == 0 {
		return 0, nil
	}

	decoded, err := decode(bufio.NewReader(r), l.Encoding, logger.Or(l.Logger))
	if err != nil {
		return 0, err
	}

	reader := bufio.NewReader(decoded)
	count := 0
	for count < limit {
		line, err := reader.ReadString('\n')
		if line != "" {
			dst[count] = trimEOL(line)
			count++
		}
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
	if _, err := reader.ReadByte(); err == nil {
		logger.Or(l.Logger).Debug("input truncated", "max", limit)
	}
	return count, nil
}

// LoadAll reads up to limit lines from path into a new slice of exactly the
// loaded length.
func (l *Loader) LoadAll(path string, limit int) ([]string, error) {
	if limit < 0 {
		return nil, ErrCapacity
	}
	buf := make([]string, limit)
	count, err := l.Load(path, limit, buf)
	return buf[:count:count], err
}

// ReadFile loads path with a zero Loader.
func ReadFile(path string, limit int, dst []string) (int, error) {
	return (&Loader{}).Load(path, limit, dst)
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func checkCapacity(limit int, dst []string) error {
	if limit < 0 || len(dst) < limit {
		return fmt.Errorf("%w: max=%d len=%d", ErrCapacity, limit, len(dst))
	}
	return nil
}
