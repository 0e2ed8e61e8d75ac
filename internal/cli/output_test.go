package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "json",
		Writer:  buf,
		TraceID: "run-1",
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, "run-1", resp.TraceID)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeConnect, "failed to open database", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeConnect, resp.Error.Code)
	assert.Equal(t, "failed to open database", resp.Error.Message)
	assert.Nil(t, resp.Data)
}

func TestOutputFormatter_JSONFailureCarriesData(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Failure(ErrCodeMismatch, "result sets differ", "row 0", map[string]bool{"match": false})
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   map[string]bool `json:"data"`
		Error  *CLIError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, false, resp.Data["match"])
	assert.Equal(t, "row 0", resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("already set up (100 rows)")
	require.NoError(t, err)
	assert.Equal(t, "already set up (100 rows)\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error(ErrCodeQuery, "query failed", "details hidden")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E_QUERY]")
	assert.Contains(t, buf.String(), "query failed")
	assert.NotContains(t, buf.String(), "details hidden")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	err := formatter.Error(ErrCodeQuery, "query failed", "no such table: items")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Details: no such table: items")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			errBuf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "text",
				Writer:    buf,
				ErrWriter: errBuf,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Seeding %d rows", 100)

			assert.Empty(t, buf.String(), "diagnostics never go to Writer when ErrWriter is set")
			if tt.wantLog {
				assert.Contains(t, errBuf.String(), "Seeding 100 rows")
			} else {
				assert.Empty(t, errBuf.String())
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitFailure, "mismatch", errors.New("row 0")))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestExitError_Message(t *testing.T) {
	inner := errors.New("connection refused")
	err := WrapExitError(ExitCommandError, "failed to open database", inner)

	assert.Equal(t, "failed to open database: connection refused", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())
}

func TestFail_JSONWritesEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	out := &OutputFormatter{Format: "json", Writer: buf}

	err := fail(out, ErrCodeConfig, ExitCommandError, "invalid configuration", errors.New("no url"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, ErrCodeConfig, resp.Error.Code)
	assert.Equal(t, "no url", resp.Error.Details)
}

func TestFail_TextWritesNothing(t *testing.T) {
	buf := &bytes.Buffer{}
	out := &OutputFormatter{Format: "text", Writer: buf}

	err := fail(out, ErrCodeConfig, ExitCommandError, "invalid configuration", errors.New("no url"))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
