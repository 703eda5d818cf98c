// SPDX-License-Identifier: MIT
// Package methylation - text matrix loader and encoder.
//
// Format:
//   - Whitespace or tab separated; blank lines are skipped.
//   - First non-blank line is the header. If it has samples+1 fields the first
//     one is a corner label and is dropped; if it has exactly samples fields
//     every field is a sample ID.
//   - Every following line is "<site> <v_1> ... <v_samples>".
//
// Compression is chosen by file extension: .gz (gzip), .zst/.zstd (zstd),
// .s2/.sz (s2 stream), .lz4 (lz4 frame). Anything else is read as plain text.

package methylation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/refactor/matrix"
)

const (
	// maxLineBytes bounds one input line; a row carries every sample of a site.
	maxLineBytes = 64 << 20

	initialLineBytes = 64 << 10
)

// Load opens path, picks a decompressor from its extension and parses the matrix.
//
// Errors:
//   - ErrInputNotFound when path does not exist.
//   - ErrInputShape for malformed content (wrapped with path and line).
//   - Decompressor errors, wrapped with path.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("methylation.Load: %s: %w", path, ErrInputNotFound)
		}
		return nil, fmt.Errorf("methylation.Load: %w", err)
	}
	defer f.Close()

	r, closeFn, err := decompress(path, f)
	if err != nil {
		return nil, fmt.Errorf("methylation.Load: %s: %w", path, err)
	}
	defer closeFn()

	return Read(r, path)
}

// decompress wraps f according to the extension of path.
// The returned close function releases decoder resources; it never closes f.
func decompress(path string, f io.Reader) (io.Reader, func(), error) {
	noop := func() {}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, noop, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, noop, err
		}
		return dec, dec.Close, nil
	case ".s2", ".sz":
		return s2.NewReader(f), noop, nil
	case ".lz4":
		return lz4.NewReader(f), noop, nil
	default:
		return f, noop, nil
	}
}

// Read parses a text matrix from r. name is used in error messages only.
// Implementation:
//   - Stage 1: first non-blank line becomes the header.
//   - Stage 2: the first data row fixes the sample count; the header is
//     matched against it.
//   - Stage 3: every row must carry exactly samples+1 fields of finite numbers.
//
// Complexity: O(sites*samples) time and memory.
func Read(r io.Reader, name string) (*Data, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	var (
		header    []string
		sampleIDs []string
		names     []string
		values    []float64
		samples   = -1
		lineNo    int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if header == nil {
			header = fields
			continue
		}
		if samples < 0 {
			samples = len(fields) - 1
			if samples < 1 {
				return nil, shapeErrorf(name, lineNo, "row has no values")
			}
			switch len(header) {
			case samples + 1:
				sampleIDs = header[1:]
			case samples:
				sampleIDs = header
			default:
				return nil, shapeErrorf(name, lineNo, "header has %d fields, want %d or %d", len(header), samples, samples+1)
			}
		}
		if len(fields) != samples+1 {
			return nil, shapeErrorf(name, lineNo, "got %d fields, want %d", len(fields), samples+1)
		}

		names = append(names, fields[0])
		for j, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, shapeErrorf(name, lineNo, "column %d: %q is not a number", j+2, s)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, shapeErrorf(name, lineNo, "column %d: non-finite value %q", j+2, s)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("methylation.Read: %s: %w", name, err)
	}
	if len(names) == 0 {
		return nil, shapeErrorf(name, lineNo, "no data rows")
	}

	m, err := matrix.NewDenseFrom(len(names), samples, values)
	if err != nil {
		return nil, fmt.Errorf("methylation.Read: %s: %w", name, err)
	}

	return New(m, names, sampleIDs)
}

// Encode writes d in the format Read accepts, with "ID" as the corner label
// and values in shortest round-trip form.
func Encode(w io.Writer, d *Data) error {
	if err := d.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("ID")
	for _, id := range d.SampleIDs {
		bw.WriteByte('\t')
		bw.WriteString(id)
	}
	bw.WriteByte('\n')

	for i := 0; i < d.Sites; i++ {
		row, err := d.Values.Row(i)
		if err != nil {
			return fmt.Errorf("methylation.Encode: %w", err)
		}
		bw.WriteString(d.CpGNames[i])
		for _, v := range row {
			bw.WriteByte('\t')
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
