package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputFlagName        = "output"
	outputFlagShorthand   = "o"
	outputFlagDescription = "Output format (json or yaml)"
	outputFormatJSON      = "json"
	outputFormatYAML      = "yaml"
)

// writeResult renders value in the requested format. YAML output keeps the
// JSON field names and order.
func writeResult(writer io.Writer, format string, value interface{}) error {
	document, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", outputFormatJSON:
		_, err = fmt.Fprintln(writer, string(document))
		return err
	case outputFormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(document, &node); err != nil {
			return fmt.Errorf("convert result to yaml: %w", err)
		}
		resetStyle(&node)

		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(&node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format %q: expected %s or %s", format, outputFormatJSON, outputFormatYAML)
	}
}

// resetStyle drops the flow and quoting styles inherited from JSON
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}
