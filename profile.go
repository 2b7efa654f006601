package foilmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ReadProfile reads one airfoil surface from r. Each line holds the x and y
// coordinates of a point separated by whitespace; further columns are
// ignored. Blank lines and lines starting with '#' are skipped.
func ReadProfile(r io.Reader) ([]r2.Vec, error) {
	var pts []r2.Vec
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Fields(text)
		if len(cols) < 2 {
			return nil, fmt.Errorf("line %d: want 2 columns, got %d", line, len(cols))
		}
		x, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, r2.Vec{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// LoadProfile reads one airfoil surface from the file at path.
func LoadProfile(path string) ([]r2.Vec, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	pts, err := ReadProfile(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}
