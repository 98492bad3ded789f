package questions

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileVersion is the bank file format version written by Export.
const FileVersion = "v1.0.0"

// ErrUnsupportedVersion is returned for bank files of another major version.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

// File is the on-disk YAML layout of a question bank.
type File struct {
	Version   string   `yaml:"version"`
	Questions []Record `yaml:"questions"`
}

// Decode reads a YAML bank file. The version must be a valid semantic
// version with the same major as FileVersion.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if !semver.IsValid(f.Version) {
		return nil, fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, f.Version)
	}
	if semver.Major(f.Version) != semver.Major(FileVersion) {
		return nil, fmt.Errorf("%w: %s (supported %s.x)", ErrUnsupportedVersion, f.Version, semver.Major(FileVersion))
	}
	return &f, nil
}

// Encode writes records as a YAML bank file at FileVersion.
func Encode(w io.Writer, recs []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: FileVersion, Questions: recs}); err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	return enc.Close()
}
