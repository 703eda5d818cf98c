// SPDX-License-Identifier: MIT

package methylation

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("methylation: input file not found")

	// ErrInputShape is returned when the input is not a sites × samples matrix:
	// ragged rows, non-numeric values, a missing header or no data rows.
	ErrInputShape = errors.New("methylation: input is not a sites × samples matrix")

	// ErrNilData is returned when a nil *Data or a Data without values is used.
	ErrNilData = errors.New("methylation: nil data")
)

// shapeErrorf wraps ErrInputShape with the file name, the line and a detail message.
func shapeErrorf(name string, line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s: %w", name, line, fmt.Sprintf(format, args...), ErrInputShape)
}
