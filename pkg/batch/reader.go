package batch

import (
	"bufio"
	"io"
	"strings"
)

// SkipLeadingComments returns a reader that discards a leading run of
// '#'-comment lines (ignoring leading whitespace) and passes the rest of r
// through unchanged. Single-pass and forward-only: a comment line after the
// first data line is data, and restarting means reopening the source.
func SkipLeadingComments(r io.Reader) io.Reader {
	return &commentSkipper{src: bufio.NewReader(r)}
}

type commentSkipper struct {
	src  *bufio.Reader
	rest io.Reader
}

func (s *commentSkipper) Read(p []byte) (int, error) {
	if s.rest == nil {
		for {
			line, err := s.src.ReadString('\n')
			if isComment(line) {
				if err != nil {
					// Comment-only input; nothing left to yield.
					if err == io.EOF {
						s.rest = strings.NewReader("")
						break
					}
					return 0, err
				}
				continue
			}
			s.rest = io.MultiReader(strings.NewReader(line), s.src)
			break
		}
	}
	return s.rest.Read(p)
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}
