package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"order-mapper/internal/config"
)

// render writes v in the configured output format.
func render(w io.Writer, out config.Output, v any) error {
	switch out.Format {
	case config.FormatJSON:
		return renderJSON(w, out.Indent, v)
	case config.FormatYAML:
		return renderYAML(w, out.Indent, v)
	case config.FormatDump:
		cs := spew.ConfigState{
			Indent:                  strings.Repeat(" ", out.Indent),
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		cs.Fdump(w, v)

		return nil
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}

func renderJSON(w io.Writer, indent int, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indent))

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderYAML goes through JSON so the output keys match the json tags of the
// domain types, then re-reads it as a YAML node to keep field order.
func renderYAML(w io.Writer, indent int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return fmt.Errorf("failed to re-read JSON as YAML: %w", err)
	}

	clearStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)

	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
