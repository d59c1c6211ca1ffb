package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarshalTables serializes tables to a YAML table document.
func MarshalTables(tables ...Table) ([]byte, error) {
	tf := TableFile{Version: "1", Tables: tables}

	data, err := yaml.Marshal(&tf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tables: %w", err)
	}

	return data, nil
}

// ParseTables parses a YAML table document.
func ParseTables(data []byte) (*TableFile, error) {
	var tf TableFile

	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	applyDefaults(&tf)

	return &tf, nil
}

// LoadTables loads a YAML table document from path.
func LoadTables(path string) (*TableFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	return ParseTables(data)
}

// WriteTables writes tables as a YAML table document to path.
func WriteTables(path string, tables ...Table) error {
	data, err := MarshalTables(tables...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write table file %s: %w", path, err)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(tf *TableFile) {
	if tf.Version == "" {
		tf.Version = "1"
	}

	for i := range tf.Tables {
		if tf.Tables[i].Case == "" {
			tf.Tables[i].Case = "lower"
		}
	}
}
