// Package meshio reads and writes triangle meshes in the OFF and Wavefront
// OBJ text formats.
package meshio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	suggestive "github.com/frippiat/SuggestiveContours"
)

// Format is a supported file format.
type Format string

const (
	OFF Format = "off"
	OBJ Format = "obj"
)

// FormatOf returns the format named by the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".off":
		return OFF, nil
	case ".obj":
		return OBJ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Read parses a mesh in the given format.
func Read(r io.Reader, f Format) (*suggestive.Mesh, error) {
	switch f {
	case OFF:
		return LoadOFF(r)
	case OBJ:
		return LoadOBJ(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Write encodes a mesh in the given format.
func Write(w io.Writer, m *suggestive.Mesh, f Format) error {
	switch f {
	case OFF:
		return WriteOFF(w, m)
	case OBJ:
		return WriteOBJ(w, m)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Load reads the mesh file at path, choosing the format by extension.
func Load(path string) (*suggestive.Mesh, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer file.Close()

	m, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("meshio: load %s: %w", path, err)
	}

	suggestive.Logger().Debug("meshio: loaded mesh", "path", path, "vertices", m.VertexCount(), "faces", m.FaceCount())
	return m, nil
}

// LoadInto clears m and then fills it from the file at path. On failure m
// stays cleared.
func LoadInto(path string, m *suggestive.Mesh) error {
	m.Clear()

	loaded, err := Load(path)
	if err != nil {
		return err
	}

	*m = *loaded
	return nil
}

// Save writes m to path, choosing the format by extension.
func Save(path string, m *suggestive.Mesh) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("meshio: %w", cerr)
		}
	}()

	return Write(file, m, f)
}
