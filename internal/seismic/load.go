package seismic

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"github.com/xuri/excelize/v2"
)

//go:embed schema/input.schema.json
var inputSchema string

// LoadFromFile loads a building input from a JSON file.
// Fields omitted from the file keep the values of DefaultInput.
func LoadFromFile(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseInput(path, data)
}

// ParseInput checks data against the input schema and decodes it.
// name identifies the document in error messages.
func ParseInput(name string, data []byte) (*Input, error) {
	if err := checkSchema(name, data); err != nil {
		return nil, err
	}

	in := DefaultInput()
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

func checkSchema(name string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(inputSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to check %s against the input schema: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{
		Path:   name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}

// LoadStoriesXLSX reads stories from the first sheet of a workbook.
// The first row is a header; each following row is height (m), weight (kN)
// and an optional name, bottom story first. Blank rows are skipped.
func LoadStoriesXLSX(path string) ([]Story, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no story rows", sheet)
	}

	var stories []Story
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected height and weight", i+1)
		}
		s, err := storyFromCells(row[0], row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(row) > 2 {
			s.Name = strings.TrimSpace(row[2])
		}
		stories = append(stories, s)
	}

	if len(stories) == 0 {
		return nil, fmt.Errorf("sheet %q has no story rows", sheet)
	}
	return stories, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseStory parses the "height:weight[:name]" form used on the command line.
func ParseStory(s string) (Story, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return Story{}, fmt.Errorf("invalid story %q (expected height:weight[:name])", s)
	}
	story, err := storyFromCells(parts[0], parts[1])
	if err != nil {
		return Story{}, fmt.Errorf("invalid story %q: %w", s, err)
	}
	if len(parts) == 3 {
		story.Name = strings.TrimSpace(parts[2])
	}
	return story, nil
}

func storyFromCells(height, weight string) (Story, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if err != nil {
		return Story{}, fmt.Errorf("bad height %q", height)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return Story{}, fmt.Errorf("bad weight %q", weight)
	}
	return Story{Height: h, Weight: w}, nil
}
