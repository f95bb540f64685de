// Package seed reads catalog fixtures (ingredients, tags) from JSON or CSV files.
package seed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"foodgram/domain"
	"foodgram/internal/utils"
)

func ReadIngredients(path string) ([]domain.IngredientSeed, error) {
	var seeds []domain.IngredientSeed
	err := read(path, &seeds, func(record []string) {
		seeds = append(seeds, domain.IngredientSeed{Name: record[0], MeasurementUnit: record[1]})
	})
	if err != nil {
		return nil, err
	}
	return seeds, validate(seeds)
}

func ReadTags(path string) ([]domain.TagSeed, error) {
	var seeds []domain.TagSeed
	err := read(path, &seeds, func(record []string) {
		seeds = append(seeds, domain.TagSeed{Name: record[0], Slug: record[1]})
	})
	if err != nil {
		return nil, err
	}
	return seeds, validate(seeds)
}

// read decodes a JSON array into target, or feeds each two-column CSV
// record to row. A leading header row is not expected.
func read(path string, target any, row func([]string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.NewDecoder(f).Decode(target)
	case ".csv":
		return readCSV(f, row)
	default:
		return domain.ErrUnsupportedSeedFileType
	}
}

func readCSV(r io.Reader, row func([]string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		row(record)
	}
}

func validate[T any](seeds []T) error {
	utils.InitValidator()
	for i := range seeds {
		if err := utils.Validate.Struct(seeds[i]); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}
