package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"order-mapper/internal/mapping"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDetail_JSON(t *testing.T) {
	out, _, err := execute(t, "detail", "testdata/detail.json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)

	assert.Equal(t, float64(5001), got["orderId"])
	assert.Equal(t, "119.95", got["subtotal"])
	assert.Equal(t, "0", got["shipping"])
	assert.Equal(t, "6", got["vipDiscount"])
	assert.Equal(t, float64(80), got["orderRewardPoints"])

	lines, ok := got["orderLines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 2)
	assert.Equal(t, "39.95", lines[0].(map[string]any)["vipUnitPrice"])
}

func TestDetail_YAMLFromConfig(t *testing.T) {
	out, stderr, err := execute(t, "--config", "testdata/config.yaml", "detail", "testdata/detail.json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)

	assert.Equal(t, 5001, got["orderId"])
	assert.Equal(t, "119.95", got["subtotal"])
	assert.Contains(t, out, "orderLines:\n")
}

func TestDetail_OutputFlagOverridesConfig(t *testing.T) {
	out, _, err := execute(t, "--config", "testdata/config.yaml", "-o", "dump", "detail", "testdata/detail.json")
	require.NoError(t, err)

	assert.Contains(t, out, "domain.OrderDetail")
	assert.Contains(t, out, "OrderID: (int64) 5001")
}

func TestDetail_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "detail", "testdata/detail.json")
	require.NoError(t, err)

	assert.Contains(t, stderr, "step=regroup_bundles")
	assert.Contains(t, stderr, "order_id=5001")
}

func TestSummary(t *testing.T) {
	out, _, err := execute(t, "summary", "testdata/summary.yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)

	assert.Equal(t, float64(6001), got["orderId"])
	assert.Equal(t, "56", got["subtotal"])
	assert.Equal(t, "02/03/2024", got["datePlacedShort"])
}

func TestRecordErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing file", args: []string{"detail", "testdata/absent.json"}, wantErr: "failed to read record file"},
		{name: "no args", args: []string{"summary"}, wantErr: "accepts 1 arg"},
		{name: "bad output", args: []string{"-o", "xml", "detail", "testdata/detail.json"}, wantErr: `unknown output format "xml"`},
		{name: "bad level", args: []string{"--log-level", "loud", "detail", "testdata/detail.json"}, wantErr: "unknown log level"},
		{name: "missing config", args: []string{"--config", "testdata/absent.yaml", "validate"}, wantErr: "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDetail_EmptyEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order_detail: []\n"), 0o644))

	_, _, err := execute(t, "detail", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil order record")
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "schema", "Address", "Tracking")
	require.NoError(t, err)

	tf, err := mapping.ParseTables([]byte(out))
	require.NoError(t, err)
	require.Len(t, tf.Tables, 2)
	assert.Equal(t, "Address", tf.Tables[0].Name)
	assert.Equal(t, "upper", tf.Tables[0].Case)
	assert.Equal(t, "Tracking", tf.Tables[1].Name)
}

func TestSchema_UnknownTable(t *testing.T) {
	_, _, err := execute(t, "schema", "Invoice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown schema table "Invoice"`)
}

func TestSchema_UnknownTableHint(t *testing.T) {
	_, _, err := execute(t, "schema", "OrderDetial")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "OrderDetail"?`)
}

func TestSchema_WriteThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")

	_, _, err := execute(t, "schema", "--write", path)
	require.NoError(t, err)

	out, _, err := execute(t, "validate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "8 tables ok")
}

func TestValidate_BuiltIn(t *testing.T) {
	out, _, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "8 tables ok")
	assert.Contains(t, out, "0 errors, 0 warnings")
}

func TestValidate_BrokenFile(t *testing.T) {
	out, _, err := execute(t, "validate", "--file", "testdata/bad_tables.yaml")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, out, "Broken:\n")
	assert.Contains(t, out, "duplicate_target")
	assert.Contains(t, out, "source_case_mismatch")
	assert.Contains(t, out, `unknown coercion "nubmer" (did you mean "number"?)`)
	assert.Contains(t, out, "3 errors, 0 warnings, 0 infos")
}
