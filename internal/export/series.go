// Package export writes sea surface results to files other tools can load.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ngmaloney/seastate/internal/models"
)

const seriesHeader = "#[1]time(sec) [2]wave_elevation(m)"

// WriteSeries writes a probe record as two whitespace separated columns.
func WriteSeries(w io.Writer, s *models.ElevationSeries) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, seriesHeader)
	for _, smp := range s.Samples {
		fmt.Fprintf(bw, "%.3f %.6f\n", smp.Time, smp.Elevation)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing series: %w", err)
	}
	return nil
}

// WriteSeriesFile writes a probe record to path, replacing any existing file.
func WriteSeriesFile(path string, s *models.ElevationSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating series file: %w", err)
	}
	if err := WriteSeries(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSeries parses the format written by WriteSeries. Lines starting with
// '#' and blank lines are skipped.
func ReadSeries(r io.Reader) (*models.ElevationSeries, error) {
	s := &models.ElevationSeries{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Fields(text)
		if len(cols) != 2 {
			return nil, fmt.Errorf("line %d: want 2 columns, got %d", line, len(cols))
		}
		t, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing time: %w", line, err)
		}
		z, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing elevation: %w", line, err)
		}
		s.Add(t, z)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading series: %w", err)
	}
	return s, nil
}
