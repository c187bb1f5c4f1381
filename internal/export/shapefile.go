package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"

	"github.com/ngmaloney/seastate/internal/seasurface"
)

// Attribute columns of a control grid shapefile
const (
	fieldRow = iota
	fieldCol
	fieldElev
)

// GridPoint is a control point read back from a shapefile.
type GridPoint struct {
	Row, Col int
	seasurface.Point
}

// WriteGrid writes control points as POINTZ shapes with ROW, COL and ELEV
// attributes. Existing files with the same base name are replaced.
func WriteGrid(path string, points [][]seasurface.Point) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	removeGrid(base)

	w, err := shp.Create(base+".shp", shp.POINTZ)
	if err != nil {
		return fmt.Errorf("creating shapefile: %w", err)
	}
	if err := writeGridShapes(w, points); err != nil {
		w.Close()
		removeGrid(base)
		return err
	}
	w.Close()

	// go-shp v0.1.1 drops the dot when naming the attribute table.
	if _, err := os.Stat(base + "dbf"); err == nil {
		if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
			return fmt.Errorf("renaming attribute table: %w", err)
		}
	}
	return nil
}

func writeGridShapes(w *shp.Writer, points [][]seasurface.Point) error {
	if err := w.SetFields([]shp.Field{
		shp.NumberField("ROW", 10),
		shp.NumberField("COL", 10),
		shp.FloatField("ELEV", 18, 6),
	}); err != nil {
		return fmt.Errorf("setting shapefile fields: %w", err)
	}

	for i, row := range points {
		for j, p := range row {
			n := int(w.Write(&shp.PointZ{X: p.X, Y: p.Y, Z: p.Z}))
			attrs := []any{i, j, p.Z}
			for f, v := range attrs {
				if err := w.WriteAttribute(n, f, v); err != nil {
					return fmt.Errorf("writing attributes of point %d,%d: %w", i, j, err)
				}
			}
		}
	}
	return nil
}

func removeGrid(base string) {
	for _, ext := range []string{".shp", ".shx", ".dbf", "dbf"} {
		os.Remove(base + ext)
	}
}

// ReadGrid reads a shapefile written by WriteGrid.
func ReadGrid(path string) ([]GridPoint, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer r.Close()

	if n := len(r.Fields()); n < 3 {
		return nil, fmt.Errorf("shapefile %s has %d attribute fields, want ROW, COL and ELEV", path, n)
	}

	var out []GridPoint
	for r.Next() {
		n, s := r.Shape()
		pz, ok := s.(*shp.PointZ)
		if !ok {
			return nil, fmt.Errorf("shape %d is %T, want POINTZ", n, s)
		}
		row, err := strconv.Atoi(strings.TrimSpace(r.ReadAttribute(n, fieldRow)))
		if err != nil {
			return nil, fmt.Errorf("shape %d: parsing ROW: %w", n, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(r.ReadAttribute(n, fieldCol)))
		if err != nil {
			return nil, fmt.Errorf("shape %d: parsing COL: %w", n, err)
		}
		out = append(out, GridPoint{
			Row:   row,
			Col:   col,
			Point: seasurface.Point{X: pz.X, Y: pz.Y, Z: pz.Z},
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile: %w", err)
	}
	return out, nil
}
