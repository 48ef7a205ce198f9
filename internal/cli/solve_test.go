package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvonwaldner/irr/internal/api"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Stdin(t *testing.T) {
	stdout, _, err := execute(t, `{
		"presentValue": 95,
		"cashFlows": [
			{"amount": 5, "timeOffset": 1},
			{"amount": 5, "timeOffset": 2},
			{"amount": 105, "timeOffset": 3}
		],
		"guess": 0.05
	}`, "solve")
	require.NoError(t, err)

	var resp api.IRRResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.True(t, resp.Converged)
	require.NotNil(t, resp.Rate)
	assert.InDelta(t, 0.0690184245, *resp.Rate, 1e-9)
}

func TestSolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"presentValue": 5, "cashFlows": []}`), 0o644))

	stdout, _, err := execute(t, "", "solve", "--file", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"converged":false,"iterations":1}`, stdout)
}

func TestSolve_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "solve", "-f", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open request")
}

func TestSolve_InvalidRequest(t *testing.T) {
	_, _, err := execute(t, `{"cashFlows": [{"amount": 1, "timeOffset": -2}]}`, "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cashFlows[0].timeOffset must be >= 0")
}

func TestSolve_DebugLog(t *testing.T) {
	_, stderr, err := execute(t, `{"cashFlows": [{"amount": -100, "timeOffset": 0}, {"amount": 110, "timeOffset": 1}]}`,
		"--log-level", "debug", "--log-format", "json", "solve")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"irr solved"`)
	assert.Contains(t, stderr, `"converged":true`)
}
