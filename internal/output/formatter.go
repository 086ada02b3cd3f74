// Package output renders a bundle plan as JSON, YAML or a summary table.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/specialistvlad/bundlegrid/internal/model"
	"github.com/specialistvlad/bundlegrid/modules/typescript"
	"gopkg.in/yaml.v3"
)

// Format represents the output format
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat parses a format string
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid: json, yaml, table)", s)
	}
}

// Formatter writes plans in the configured format
type Formatter struct {
	Format Format
	Writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{Format: format, Writer: w}
}

// Print outputs the plan in the configured format
func (f *Formatter) Print(bundles []model.Descriptor) error {
	if bundles == nil {
		bundles = []model.Descriptor{}
	}
	switch f.Format {
	case FormatYAML:
		return f.printYAML(bundles)
	case FormatTable:
		return f.printTable(bundles)
	default:
		return f.printJSON(bundles)
	}
}

func (f *Formatter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

func (f *Formatter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.Writer)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

func (f *Formatter) printTable(bundles []model.Descriptor) error {
	table := tablewriter.NewWriter(f.Writer)
	table.SetHeader([]string{"File", "Format", "Target", "Plugins", "External"})

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, d := range bundles {
		table.Append([]string{
			d.Output.File,
			string(d.Output.Format),
			compilerTarget(d),
			strings.Join(d.PluginNames(), ","),
			strings.Join(d.External, ","),
		})
	}
	table.Render()
	return nil
}

func compilerTarget(d model.Descriptor) string {
	if p, ok := d.Plugin(typescript.Name); ok {
		if t, ok := typescript.Target(p); ok {
			return t
		}
	}
	return "-"
}
