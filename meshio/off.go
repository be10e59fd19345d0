package meshio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/ungerik/go3d/float64/vec3"
)

// tokens splits a stream into whitespace separated words, dropping '#'
// comments and tracking line numbers.
type tokens struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
	format  string
}

// maxLine bounds the length of one line of a mesh file.
var maxLine = 16 << 20

// maxCount bounds the element counts of an OFF header, and capHint the
// capacity reserved from them before the records are read.
const (
	maxCount = 1<<31 - 1
	capHint  = 1 << 16
)

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLine)
	return s
}

func newTokens(r io.Reader, format string) *tokens {
	return &tokens{scanner: newScanner(r), format: format}
}

func (t *tokens) next() (string, error) {
	for len(t.fields) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return "", &ParseError{Format: t.format, Line: t.line + 1, Err: err}
			}
			return "", &ParseError{Format: t.format, Err: errEOF}
		}
		t.line++
		line := t.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		t.fields = strings.Fields(line)
	}

	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, nil
}

func (t *tokens) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, t.errorf(tok, err)
	}
	return v, nil
}

func (t *tokens) float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, t.errorf(tok, err)
	}
	return v, nil
}

func (t *tokens) errorf(tok string, err error) *ParseError {
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return &ParseError{Format: t.format, Line: t.line, Token: tok, Err: err}
}

// LoadOFF reads an OFF file: a header word, the vertex, face and edge
// counts, the vertex coordinates and one "3 a b c" record per face. Only
// positions and faces are read; normals and texture coordinates are derived.
func LoadOFF(r io.Reader) (*suggestive.Mesh, error) {
	t := newTokens(r, "off")

	header, err := t.next()
	if err != nil {
		return nil, err
	}
	if header != "OFF" {
		suggestive.Logger().Warn("meshio: unexpected OFF header", "header", header)
	}

	var counts [3]int
	for i := range counts {
		if counts[i], err = t.int(); err != nil {
			return nil, err
		}
		if counts[i] < 0 || counts[i] > maxCount {
			return nil, t.errorf(strconv.Itoa(counts[i]), errCount)
		}
	}
	nv, nf := counts[0], counts[1]

	points := make([]vec3.T, 0, min(nv, capHint))
	for i := 0; i < nv; i++ {
		var p vec3.T
		for k := 0; k < 3; k++ {
			if p[k], err = t.float(); err != nil {
				return nil, err
			}
		}
		points = append(points, p)
	}

	faces := make([]suggestive.Tri, 0, min(nf, capHint))
	for i := 0; i < nf; i++ {
		var tri suggestive.Tri
		size, err := t.int()
		if err != nil {
			return nil, err
		}
		if size != 3 {
			return nil, t.errorf(strconv.Itoa(size), errFaceSize)
		}
		for k := 0; k < 3; k++ {
			v, err := t.int()
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= nv {
				return nil, t.errorf(strconv.Itoa(v), errRange)
			}
			tri[k] = v
		}
		faces = append(faces, tri)
	}

	return suggestive.NewMesh(points, faces)
}

// WriteOFF writes the positions and faces of m in OFF format.
func WriteOFF(w io.Writer, m *suggestive.Mesh) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("OFF\n")
	bw.WriteString(strconv.Itoa(len(m.Points)) + " " + strconv.Itoa(len(m.Faces)) + " 0\n")
	for i := range m.Points {
		writeVec(bw, "", &m.Points[i])
	}
	for _, tri := range m.Faces {
		bw.WriteString("3 " + strconv.Itoa(tri[0]) + " " + strconv.Itoa(tri[1]) + " " + strconv.Itoa(tri[2]) + "\n")
	}

	return bw.Flush()
}

func writeVec(bw *bufio.Writer, prefix string, v *vec3.T) {
	bw.WriteString(prefix)
	for k, x := range v {
		if k > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}
