package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/knapsack"
)

// Format names accepted by ReadFile and WriteFile.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Problem is the content of a problem file.
type Problem struct {
	Capacity *int            `json:"capacity,omitempty" toml:"capacity,omitempty"`
	Items    []knapsack.Item `json:"items" toml:"items"`
}

// ReadJSON decodes a JSON problem from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Problem, error) {
	var p Problem
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return &p, validate(&p)
}

// ReadTOML decodes a TOML problem from r. ReadTOML does not close r.
func ReadTOML(r io.Reader) (*Problem, error) {
	var p Problem
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &p, validate(&p)
}

// ReadFile reads a problem from path, choosing the decoder by extension.
func ReadFile(path string) (*Problem, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := errors.ValidateFormat(path, FormatJSON, FormatTOML)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "problem file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTOML {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

func validate(p *Problem) error {
	if err := knapsack.ValidateItems(p.Items); err != nil {
		return err
	}
	if p.Capacity != nil {
		return errors.ValidateCapacity(*p.Capacity)
	}
	return nil
}
