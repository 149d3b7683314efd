package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cages/internal/cage"
)

var wantFile = &cage.File{
	MaxDigit: 9,
	Cages: []cage.Cage{
		{Name: "top-left", Sum: 20, Digits: 4, Exclude: []int{2, 7}},
		{Name: "corner", Sum: 3, Digits: 2},
	},
}

func TestLoadFile_YAML(t *testing.T) {
	file, err := LoadFile("testdata/cages.yaml")
	require.NoError(t, err)
	assert.Equal(t, wantFile, file)
}

func TestLoadFile_CUE(t *testing.T) {
	file, err := LoadFile("testdata/cages.cue")
	require.NoError(t, err)
	assert.Equal(t, wantFile, file)
}

func TestLoadFile_UnknownYAMLField(t *testing.T) {
	_, err := LoadFile("testdata/typo.yaml")
	require.Error(t, err)
	assert.Equal(t, ErrCodeParseFailed, ErrorCode(err))
	assert.Contains(t, err.Error(), "exlcude")
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadFile("testdata/cages.toml")
	require.Error(t, err)
	assert.Equal(t, ErrCodeFormat, ErrorCode(err))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ErrCodeReadFailed, ErrorCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeYAML_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"no cages", "max_digit: 9\n", ErrCodeNoCages},
		{"empty cages", "cages: []\n", ErrCodeNoCages},
		{"zero digits", "cages:\n  - sum: 4\n    digits: 0\n", ErrCodeInvalidCage},
		{"negative sum", "cages:\n  - sum: -4\n    digits: 2\n", ErrCodeInvalidCage},
		{"negative max", "max_digit: -1\ncages:\n  - sum: 4\n    digits: 2\n", ErrCodeInvalidCage},
		{"bad syntax", "cages: [\n", ErrCodeParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.code, ErrorCode(err))
		})
	}
}

func TestDecodeCUE_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"empty cages", "cages: []\n", ErrCodeSchema},
		{"zero digits", "cages: [{sum: 4, digits: 0}]\n", ErrCodeSchema},
		{"negative sum", "cages: [{sum: -1, digits: 2}]\n", ErrCodeSchema},
		{"unknown field", "cages: [{sum: 4, digits: 2, exlcude: [1]}]\n", ErrCodeSchema},
		{"missing digits", "cages: [{sum: 4}]\n", ErrCodeSchema},
		{"string sum", "cages: [{sum: \"4\", digits: 2}]\n", ErrCodeSchema},
		{"bad syntax", "cages: [\n", ErrCodeParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCUE([]byte(tt.src), "inline.cue")
			require.Error(t, err)
			assert.Equal(t, tt.code, ErrorCode(err), err.Error())
		})
	}
}

func TestDecodeCUE_ErrorDetails(t *testing.T) {
	_, err := DecodeCUE([]byte("cages: [{sum: 4, digits: 0}]\n"), "inline.cue")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
	assert.Contains(t, err.Error(), "E005")
	assert.NotNil(t, loadErr.Unwrap())
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Code: ErrCodeNoCages, Message: "no cages"}
	assert.Equal(t, "E007: no cages", err.Error())
	assert.Equal(t, ErrCodeGeneric, ErrorCode(assert.AnError))
}
