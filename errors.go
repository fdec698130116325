package pixfmt

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is reported when a query receives FormatInvalid,
// FormatCount, or a value outside the catalogue.
var ErrUnsupportedFormat = errors.New("pixfmt: unsupported format")

// FormatError records the query and the format that could not be
// classified.
type FormatError struct {
	Op     string
	Format Format
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pixfmt: %s: unsupported format %s", e.Op, e.Format)
}

// Unwrap returns ErrUnsupportedFormat so callers can match with errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// reportUnsupported logs the classification failure on the package
// logger. It never fails and never panics; the caller returns its
// documented default afterwards.
func reportUnsupported(op string, f Format) {
	Logger().Warn("pixfmt: unsupported format",
		"op", op,
		"format", f.String(),
		"value", int32(f),
	)
}
