package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	numerrors "github.com/alexisbeaulieu97/numinput/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Checkout"
description: "Sample fields for parser tests"
fields:
  - name: quantity
    label: Quantity
    min: 1
    max: 99
    default_value: 1
    allow_decimal: false
  - name: ledger_id
    mode: bigint
    default_value: "12345678901234567890"
    step: 10
`

	invalidYAML := `version: [1, 0]
name: "Broken"
fields:
  - name: missing
`

	unknownKey := `version: "1.0"
name: "Typos"
fields:
  - name: amount
    maximum: 10
`

	missingRequired := `version: "1.0"
name: "No Fields"
`

	badVersion := `version: "beta"
name: "Bad Version"
fields:
  - name: amount
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Checkout", doc.Name)
				require.Equal(t, []string{"quantity", "ledger_id"}, doc.Names())
				require.Equal(t, Number("12345678901234567890"), doc.Fields[1].DefaultValue)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *numerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *numerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "maximum")
				require.Equal(t, 5, parseErr.Line)
			},
		},
		{
			name:     "missing required fields returns validation error",
			contents: missingRequired,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *numerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "fields")
			},
		},
		{
			name:     "schema version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *numerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := ParseDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseDocumentMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *numerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrClosed))
	require.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
