// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the description file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatOf returns the format for the extension of the given file name.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scene: unsupported description file %q", filename)
}

// Parse parses a description in the given format. Unknown fields are
// an error, so that typos in hand-written files are reported.
func Parse(b []byte, format Formats) (*Description, error) {
	d := &Description{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("scene: parsing yaml: %w", err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("scene: parsing toml: %w", err)
		}
	}
	return d, nil
}

// LoadFile loads a description from a TOML or YAML file,
// chosen by its extension.
func LoadFile(filename string) (*Description, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	d, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// LoadFS loads a description from a file in fsys.
func LoadFS(fsys fs.FS, filename string) (*Description, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	d, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// Marshal encodes the description in the given format.
func Marshal(d *Description, format Formats) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(d)
	}
	return toml.Marshal(d)
}
