// Package export serializes sweep results to CSV and JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/pkiran/springcalc/internal/sweep"
)

// Series is an exported sweep: which parameter varied, the display unit of
// its values, and the sampled points.
type Series struct {
	Param           string        `json:"param"`
	Unit            string        `json:"unit"`
	WireDiameterMm  float64       `json:"wire_diameter_mm"`
	InnerDiameterMm float64       `json:"inner_diameter_mm"`
	ActiveCoils     float64       `json:"active_coils"`
	ShearModulusGPa float64       `json:"shear_modulus_gpa"`
	Points          []sweep.Point `json:"points"`
}

func WriteCSV(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{s.Param + " [" + s.Unit + "]", "rate [N/m]"}); err != nil {
		return err
	}
	for _, p := range s.Points {
		row := []string{
			strconv.FormatFloat(p.Value, 'f', 6, 64),
			strconv.FormatFloat(p.Rate, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, s Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// JSONToFile writes the series as indented JSON to path.
func JSONToFile(path string, s Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, s)
}
