// SPDX-License-Identifier: MPL-2.0

package fsx

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/axlekit/axle/pkg/diag"
)

// ReadJSON reads and decodes a JSON file. The whole file is loaded into
// memory during decoding.
func ReadJSON[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, diag.WrapPath(err, "read file", path)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, diag.WrapPath(err, "decode json", path)
	}
	return out, nil
}

// WriteJSON encodes v as indented JSON and writes it to the named file.
func WriteJSON(path string, v any, perm os.FileMode) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return diag.WrapPath(err, "encode json", path)
	}
	return diag.WrapPath(os.WriteFile(path, buf.Bytes(), perm), "write file", path)
}

// ReadTOML reads and decodes a TOML file.
func ReadTOML[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		return out, diag.WrapPath(err, "read file", path)
	}
	if err := toml.Unmarshal(data, &out); err != nil {
		return out, diag.WrapPath(err, "decode toml", path)
	}
	return out, nil
}

// WriteTOML encodes v as TOML and writes it to the named file.
func WriteTOML(path string, v any, perm os.FileMode) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return diag.WrapPath(err, "encode toml", path)
	}
	return diag.WrapPath(os.WriteFile(path, data, perm), "write file", path)
}
