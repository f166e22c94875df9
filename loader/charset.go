package loader

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// sniffSize is how much of the input is inspected to guess its charset.
const sniffSize = 4096

// decode returns a reader producing UTF-8. An explicit label always wins.
func decode(r *bufio.Reader, label string, log *slog.Logger) (io.Reader, error) {
	if label != "" {
		decoded, err := charset.NewReaderLabel(label, r)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", label, err)
		}
		return decoded, nil
	}

	sample, err := r.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	if utf8.Valid(completeRunes(sample)) {
		return r, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		log.Debug("charset detection failed, reading as UTF-8", "error", err)
		return r, nil
	}
	decoded, err := charset.NewReaderLabel(best.Charset, r)
	if err != nil {
		log.Debug("unsupported charset, reading as UTF-8", "charset", best.Charset)
		return r, nil
	}
	log.Debug("charset detected", "charset", best.Charset, "confidence", best.Confidence)
	return decoded, nil
}

// completeRunes drops a multi-byte sequence cut by the end of b.
func completeRunes(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}
