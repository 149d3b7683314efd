package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/cages/internal/cage"
)

//go:embed schema.cue
var cageSchema []byte

// LoadFile reads a cage file, choosing the decoder by extension
// (.yaml, .yml or .cue), and validates every cage.
func LoadFile(path string) (*cage.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading cage file: %v", err), Err: err}
	}

	var file *cage.File
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		file, err = DecodeYAML(data)
	case ".cue":
		file, err = DecodeCUE(data, path)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Message: fmt.Sprintf("unsupported cage file extension %q (want .yaml, .yml or .cue)", ext)}
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// DecodeYAML parses a YAML cage file. Unknown fields are rejected so typos
// like "exlcude:" don't silently drop a constraint.
func DecodeYAML(data []byte) (*cage.File, error) {
	var file cage.File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing YAML: %v", err), Err: err}
	}
	if err := Validate(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DecodeCUE compiles a CUE cage file, unifies it with the cage schema and
// decodes the result. filename is used in error positions only.
func DecodeCUE(data []byte, filename string) (*cage.File, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(cageSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling schema: %v", err), Err: err}
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParseFailed, "compiling CUE", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchema, "validating against cage schema", err)
	}

	var file cage.File
	if err := unified.Decode(&file); err != nil {
		return nil, cueLoadError(ErrCodeSchema, "decoding CUE", err)
	}
	if err := Validate(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks that a file has cages and that each one is solvable.
func Validate(file *cage.File) error {
	if len(file.Cages) == 0 {
		return &LoadError{Code: ErrCodeNoCages, Message: "cages list is required and must be non-empty"}
	}
	if file.MaxDigit < 0 {
		return &LoadError{Code: ErrCodeInvalidCage, Message: fmt.Sprintf("max_digit must be positive, got %d", file.MaxDigit)}
	}
	for i, c := range file.Cages {
		if err := c.Rules(file.MaxDigit).Validate(); err != nil {
			return &LoadError{Code: ErrCodeInvalidCage, Message: fmt.Sprintf("cages[%d] (%s): %v", i, c.Label(), err), Err: err}
		}
	}
	return nil
}

func cueLoadError(code, context string, err error) *LoadError {
	loadErr := &LoadError{Code: code, Message: fmt.Sprintf("%s: %v", context, err), Err: err}
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		loadErr.Pos = errs[0].Position()
	}
	return loadErr
}
