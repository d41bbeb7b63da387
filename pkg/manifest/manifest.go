// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest declares margs command trees in TOML or YAML files.
//
// A manifest mirrors the builder API: each command has a name, optional
// description, positional arguments, options, subcommands and the name of
// an action looked up in a caller-provided Handlers map at build time.
//
//	version = "1.0.0"
//	name = "washer"
//
//	[[commands]]
//	name = "rinse"
//	action = "print"
//
//	  [[commands.args]]
//	  name = "item"
//
//	  [[commands.options]]
//	  short = "t"
//	  long = "temp"
//	  choices = ["cold", "warm", "hot"]
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

const (
	// SchemaVersion is written by Encode when a manifest has no version.
	SchemaVersion = "1.0.0"

	supportedVersions = ">= 1.0.0, < 2.0.0"
)

// Format is a manifest encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown manifest format %q (want toml or yaml)", s)
}

// FormatFromPath picks the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot tell manifest format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Manifest is the document root. Its embedded Command is the root command,
// whose name is the program name.
type Manifest struct {
	Version string `toml:"version" yaml:"version"`
	Command `yaml:",inline"`
}

type Command struct {
	Name        string    `toml:"name" yaml:"name"`
	Description string    `toml:"description,omitempty" yaml:"description,omitempty"`
	Action      string    `toml:"action,omitempty" yaml:"action,omitempty"`
	Args        []Arg     `toml:"args,omitempty" yaml:"args,omitempty"`
	Options     []Option  `toml:"options,omitempty" yaml:"options,omitempty"`
	Commands    []Command `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

type Arg struct {
	Name        string   `toml:"name" yaml:"name"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Optional    bool     `toml:"optional,omitempty" yaml:"optional,omitempty"`
	Index       *int     `toml:"index,omitempty" yaml:"index,omitempty"` // Slot position; appended when unset
	Choices     []string `toml:"choices,omitempty" yaml:"choices,omitempty"`
}

type Option struct {
	Short       string   `toml:"short,omitempty" yaml:"short,omitempty"`
	Long        string   `toml:"long,omitempty" yaml:"long,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Flag        bool     `toml:"flag,omitempty" yaml:"flag,omitempty"`
	Optional    bool     `toml:"optional,omitempty" yaml:"optional,omitempty"`
	Default     string   `toml:"default,omitempty" yaml:"default,omitempty"`
	Choices     []string `toml:"choices,omitempty" yaml:"choices,omitempty"`
}

// Load reads the manifest at path, choosing the format by extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty manifest")
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
	return &m, nil
}

// Encode writes m in the given format.
func (m *Manifest) Encode(w io.Writer, format Format) error {
	out := *m
	if out.Version == "" {
		out.Version = SchemaVersion
	}
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(out)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown manifest format %q", format)
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid version %q: %v", v, err)
	}
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(ver) {
		return fmt.Errorf("unsupported version %s (want %s)", ver, supportedVersions)
	}
	return nil
}
