package meshio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/ungerik/go3d/float64/vec3"
)

// LoadOBJ reads the "v" and "f" records of a Wavefront OBJ file. A face
// vertex uses the index before its first '/', 1-based, or relative to the
// vertices read so far when negative. Polygons are split into a triangle fan
// around their first vertex. Every other record is ignored.
func LoadOBJ(r io.Reader) (*suggestive.Mesh, error) {
	var (
		points []vec3.T
		faces  []suggestive.Tri
		lines  []int
		poly   []int
	)

	scanner := newScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &ParseError{Format: "obj", Line: line, Err: errVertex}
			}
			var p vec3.T
			for k := 0; k < 3; k++ {
				x, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, objError(line, fields[k+1], err)
				}
				p[k] = x
			}
			points = append(points, p)

		case "f":
			if len(fields) < 4 {
				return nil, &ParseError{Format: "obj", Line: line, Err: errFaceTokens}
			}
			poly = poly[:0]
			for _, tok := range fields[1:] {
				idx := tok
				if i := strings.IndexByte(tok, '/'); i >= 0 {
					idx = tok[:i]
				}
				v, err := strconv.Atoi(idx)
				if err != nil {
					return nil, objError(line, tok, err)
				}
				switch {
				case v > 0:
					v--
				case v < 0:
					v += len(points)
				default:
					return nil, objError(line, tok, errRange)
				}
				if v < 0 {
					return nil, objError(line, tok, errRange)
				}
				poly = append(poly, v)
			}
			for k := 1; k+1 < len(poly); k++ {
				faces = append(faces, suggestive.Tri{poly[0], poly[k], poly[k+1]})
				lines = append(lines, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: "obj", Line: line + 1, Err: err}
	}

	// Faces may reference vertices defined further down the file.
	for i, tri := range faces {
		for _, v := range tri {
			if v >= len(points) {
				return nil, objError(lines[i], strconv.Itoa(v+1), errRange)
			}
		}
	}

	return suggestive.NewMesh(points, faces)
}

func objError(line int, tok string, err error) *ParseError {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseError{Format: "obj", Line: line, Token: tok, Err: err}
}

// WriteOBJ writes the positions and faces of m as OBJ "v" and "f" records.
func WriteOBJ(w io.Writer, m *suggestive.Mesh) error {
	bw := bufio.NewWriter(w)

	for i := range m.Points {
		writeVec(bw, "v ", &m.Points[i])
	}
	for _, tri := range m.Faces {
		bw.WriteString("f " + strconv.Itoa(tri[0]+1) + " " + strconv.Itoa(tri[1]+1) + " " + strconv.Itoa(tri[2]+1) + "\n")
	}

	return bw.Flush()
}
