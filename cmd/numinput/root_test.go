package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/numinput/internal/script"
	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

const percentDocument = `version: 1.0.0
name: Survey
fields:
  - name: percent
    min: 0
    max: 100
`

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, output, "numinput 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}

func TestDefaultDocumentIsValid(t *testing.T) {
	doc, err := loadDocument("")
	require.NoError(t, err)
	require.Equal(t, []string{"quantity", "price", "discount", "serial", "batch"}, doc.Names())
}

func TestCheckCommandListsFields(t *testing.T) {
	output, err := executeCommand(t, "", "check")
	require.NoError(t, err)
	require.Contains(t, output, "Order form: 5 field(s) OK")
	require.Contains(t, output, "FIELD")
	require.Contains(t, output, "serial")
	require.Contains(t, output, "bigint")
	require.Contains(t, output, "[0, 99]")
	require.Contains(t, output, "read-only")
}

func TestCheckCommandReportsInvalidDocument(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", `version: 1.0.0
name: Broken
fields:
  - name: bad
    min: 10
    max: 1
`)

	_, err := executeCommand(t, "", "check", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fields[bad].min")

	var verr *numerrors.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "", "check", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

func TestEvalCommandPrintsTable(t *testing.T) {
	path := writeTempFile(t, "survey.yaml", percentDocument)

	output, err := executeCommand(t, "focus\ntype 150\nblur\n", "eval", "--config", path)
	require.NoError(t, err)
	require.Contains(t, output, "LINE")
	require.Contains(t, output, "float(150)")
	require.Contains(t, output, "float(100)")
	require.Contains(t, output, `value_change blur "100"`)
}

func TestEvalCommandWritesYAML(t *testing.T) {
	docPath := writeTempFile(t, "survey.yaml", percentDocument)
	scriptPath := writeTempFile(t, "steps.script", "# step twice\nup\nup\n")

	output, err := executeCommand(t, "", "eval", "-c", docPath, "-f", "percent", "-s", scriptPath, "-o", "yaml")
	require.NoError(t, err)

	var decoded struct {
		Field string         `yaml:"field"`
		Trace []script.Entry `yaml:"trace"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	require.Equal(t, "percent", decoded.Field)
	require.Len(t, decoded.Trace, 2)
	require.Equal(t, "0", decoded.Trace[0].Value, "stepping from empty starts at the minimum")
	require.Equal(t, "1", decoded.Trace[1].Value)
	require.Equal(t, 3, decoded.Trace[1].Line)
}

func TestEvalCommandRealtime(t *testing.T) {
	docPath := writeTempFile(t, "survey.yaml", percentDocument)

	output, err := executeCommand(t, "focus\ntype 150\nblur\nup\n", "eval", "-c", docPath, "--realtime", "-o", "yaml")
	require.NoError(t, err)

	var decoded struct {
		Trace []script.Entry `yaml:"trace"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded.Trace, 4)
	require.Equal(t, "100", decoded.Trace[2].Value)
	require.Equal(t, "100", decoded.Trace[3].Value)
}

func TestEvalCommandComparesGoldenTrace(t *testing.T) {
	docPath := writeTempFile(t, "survey.yaml", percentDocument)
	events := "focus\ntype 42\nup\n"

	golden, err := executeCommand(t, events, "eval", "-c", docPath, "-o", "yaml")
	require.NoError(t, err)
	goldenPath := writeTempFile(t, "golden.yaml", golden)

	output, err := executeCommand(t, events, "eval", "-c", docPath, "--expect", goldenPath)
	require.NoError(t, err)
	require.Contains(t, output, "trace matches")
	require.Contains(t, output, "(3 events)")

	stale := strings.Replace(golden, `value: "43"`, `value: "44"`, 1)
	require.NotEqual(t, golden, stale)
	stalePath := writeTempFile(t, "stale.yaml", stale)

	output, err = executeCommand(t, events, "eval", "-c", docPath, "--expect", stalePath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "trace differs")
	require.True(t, hasDiffLine(output, "-", `value: "44"`), output)
	require.True(t, hasDiffLine(output, "+", `value: "43"`), output)
}

func hasDiffLine(diffText, marker, content string) bool {
	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, marker) && strings.TrimSpace(line[len(marker):]) == content {
			return true
		}
	}
	return false
}

func TestEvalCommandNeedsFieldForMultiFieldDocument(t *testing.T) {
	_, err := executeCommand(t, "up\n", "eval")
	require.Error(t, err)
	require.Contains(t, err.Error(), "choose one of quantity, price")

	_, err = executeCommand(t, "up\n", "eval", "--field", "nope")
	require.Error(t, err)
	var nf *numerrors.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestEvalCommandReportsScriptErrors(t *testing.T) {
	_, err := executeCommand(t, "focus\njump\n", "eval", "--field", "quantity")
	require.Error(t, err)

	var serr *numerrors.ScriptError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 2, serr.Line)
}

func TestEvalCommandRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "", "eval", "--field", "quantity", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestUnknownLogFormat(t *testing.T) {
	_, err := executeCommand(t, "", "check", "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")
}

func TestDemoRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	_, err := executeCommand(t, "", "demo")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a terminal")
	require.Contains(t, err.Error(), "numinput eval")
}
