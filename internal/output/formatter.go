// Package output renders command results as a table, JSON or YAML.
package output

import (
	"fmt"
	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"io"
	"reflect"
	"strings"
)

// Format - Output format name
type Format string

const (
	// FormatTable - Human readable table
	FormatTable Format = "table"
	// FormatJSON - Indented JSON
	FormatJSON Format = "json"
	// FormatYAML - YAML document
	FormatYAML Format = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formatter - Writes data to w in one output format
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter - Returns the formatter for format, unknown formats give a table formatter
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter - Outputs JSON
type JSONFormatter struct {
	Indent string
}

// Format - Implements Formatter
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter - Outputs YAML
type YAMLFormatter struct{}

// Format - Implements Formatter
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// Data - Rows ready for table output
type Data struct {
	Headers []string
	Rows    [][]string
	// RightAligned marks columns to align right, typically numbers
	RightAligned []bool
}

// TableFormatter - Outputs a table. Structs become a property/value table and slices of structs one row per
// element, anything else falls back to JSON.
type TableFormatter struct{}

// Format - Implements Formatter
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return f.formatTable(w, v)
	case *Data:
		return f.formatTable(w, *v)
	default:
		if tableData := convertToTableData(data); tableData != nil {
			return f.formatTable(w, *tableData)
		}

		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}
}

func (f *TableFormatter) formatTable(w io.Writer, data Data) error {
	config := tablewriter.Config{}
	if len(data.RightAligned) > 0 {
		align := make([]tw.Align, len(data.RightAligned))
		for i, right := range data.RightAligned {
			if right {
				align[i] = tw.AlignRight
			} else {
				align[i] = tw.AlignLeft
			}
		}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range data.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}

// DetectFormat - Returns the explicit format if given, otherwise a table when w is a terminal and JSON for
// pipes, redirects and in-memory writers.
func DetectFormat(explicitFormat string, w io.Writer) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return FormatTable
		}
	}

	return FormatJSON
}

// ParseFormat - Validates s as a format name, the empty string is accepted and means auto-detect
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// convertToTableData - Converts structs and slices of structs, or pointers to them, using their json tags as
// headers. Slice and map fields are left out of tables.
func convertToTableData(data any) *Data {
	v := reflect.ValueOf(data)
	if !v.IsValid() {
		return nil
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice:
		elemType := v.Type().Elem()
		for elemType.Kind() == reflect.Pointer {
			elemType = elemType.Elem()
		}
		if elemType.Kind() != reflect.Struct {
			return nil
		}
		return structSliceToTableData(v, elemType)
	case reflect.Struct:
		return singleStructToTableData(v)
	default:
		return nil
	}
}

// structSliceToTableData - One row per element, nil elements are skipped
func structSliceToTableData(v reflect.Value, elemType reflect.Type) *Data {
	fields := tableFields(elemType)
	data := &Data{}
	for _, i := range fields {
		data.Headers = append(data.Headers, headerName(elemType.Field(i)))
		data.RightAligned = append(data.RightAligned, isNumber(elemType.Field(i).Type))
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				break
			}
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			continue
		}
		row := make([]string, 0, len(fields))
		for _, j := range fields {
			row = append(row, fmt.Sprintf("%v", elem.Field(j).Interface()))
		}
		data.Rows = append(data.Rows, row)
	}

	return data
}

// singleStructToTableData - A property/value table of one struct
func singleStructToTableData(v reflect.Value) *Data {
	data := &Data{Headers: []string{"Property", "Value"}}
	for _, i := range tableFields(v.Type()) {
		data.Rows = append(data.Rows, []string{
			headerName(v.Type().Field(i)),
			fmt.Sprintf("%v", v.Field(i).Interface()),
		})
	}

	return data
}

// tableFields - Indexes of the exported scalar fields of t
func tableFields(t reflect.Type) (fields []int) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("json") == "-" {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array, reflect.Func, reflect.Chan:
			continue
		default:
			fields = append(fields, i)
		}
	}

	return
}

// headerName - Title cased json tag, or the field name when there is none
func headerName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name
	}
	if idx := strings.Index(jsonTag, ","); idx >= 0 {
		jsonTag = jsonTag[:idx]
	}
	if jsonTag == "" {
		return field.Name
	}

	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(jsonTag, "_", " "))
}

func isNumber(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
