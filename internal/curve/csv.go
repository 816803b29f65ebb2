package curve

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSVFile writes the sample to path, creating parent directories.
func WriteCSVFile(path string, points []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSV(f, points)
}

func WriteCSV(out io.Writer, points []Point) error {
	w := csv.NewWriter(out)

	header := []string{"index", "y", "is_r", "lm_r"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, p := range points {
		row := []string{
			strconv.Itoa(i),
			fmtFloat(p.Y),
			fmtFloat(p.IS),
			fmtFloat(p.LM),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
