// Package store exports completed runs as JSON or CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/multistep/experiment"
)

// ExportData is the on-disk shape of one run.
type ExportData struct {
	Model    string             `json:"model"`
	Order    int                `json:"order"`
	StepSize float64            `json:"step_size"`
	Steps    int                `json:"steps"`
	Xs       []float64          `json:"xs"`
	Ys       []float64          `json:"ys"`
	Metrics  map[string]float64 `json:"metrics"`
}

func fromResult(result *experiment.Result) ExportData {
	return ExportData{
		Model:    result.Model,
		Order:    result.Order,
		StepSize: result.StepSize,
		Steps:    len(result.Ys),
		Xs:       result.Xs,
		Ys:       result.Ys,
		Metrics:  result.Metrics,
	}
}

func ExportJSON(path string, result *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fromResult(result))
}

// ReadJSON loads a run previously written by ExportJSON.
func ReadJSON(path string) (*ExportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exported ExportData
	if err := json.Unmarshal(data, &exported); err != nil {
		return nil, err
	}
	return &exported, nil
}

func ExportCSV(path string, result *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range result.Ys {
		row := []string{
			strconv.FormatFloat(result.Xs[i], 'g', -1, 64),
			strconv.FormatFloat(result.Ys[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
