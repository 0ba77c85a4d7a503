package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/knapsack/pkg/errors"
)

// WriteJSON encodes p as indented JSON and writes it to w.
func WriteJSON(p *Problem, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes p as TOML and writes it to w.
func WriteTOML(p *Problem, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes p to path in the format given by its extension.
func WriteFile(p *Problem, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := errors.ValidateFormat(path, FormatJSON, FormatTOML)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTOML {
		return WriteTOML(p, f)
	}
	return WriteJSON(p, f)
}
