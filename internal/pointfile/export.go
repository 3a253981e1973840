package pointfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lassopick/internal/domain"
)

// ErrInvalidName is wrapped by ExportError when the destination name is unusable
var ErrInvalidName = errors.New("invalid export name")

// ExportError reports a destination that could not be written
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export failed: %v", e.Err)
	}
	return fmt.Sprintf("export to %s failed: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// FormatLine renders one exported point with six fixed decimals
func FormatLine(p domain.Point) string {
	return fmt.Sprintf("%f %f", p.X, p.Y)
}

// Exporter resolves destination names and writes exports
type Exporter struct {
	Dir       string
	Extension string
}

// NewExporter creates an exporter writing name+extension files into dir
func NewExporter(dir, extension string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{Dir: dir, Extension: extension}
}

// Path returns the file a destination name maps to. The name is used as
// typed; blank names are rejected rather than trimmed.
func (e *Exporter) Path(name string) (string, error) {
	switch {
	case strings.TrimSpace(name) == "", name == ".", name == "..":
		return "", &ExportError{Err: fmt.Errorf("%w: %q", ErrInvalidName, name)}
	case strings.ContainsRune(name, 0), strings.ContainsAny(name, `/\`):
		return "", &ExportError{Err: fmt.Errorf("%w: %q", ErrInvalidName, name)}
	}
	return filepath.Join(e.Dir, name+e.Extension), nil
}

// Export writes pts to the file named by name and returns its path
func (e *Exporter) Export(name string, pts []domain.Point) (string, error) {
	path, err := e.Path(name)
	if err != nil {
		return "", err
	}
	if err := WriteExport(path, pts); err != nil {
		return path, err
	}
	return path, nil
}

// WriteExport writes pts to path all-or-nothing: the data goes to a temporary
// file in the same directory which is renamed over path only once complete.
func WriteExport(path string, pts []domain.Point) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lassopick-*.tmp")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}

	w := bufio.NewWriter(tmp)
	for _, p := range pts {
		if _, err := w.WriteString(FormatLine(p) + "\n"); err != nil {
			return fail(err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
