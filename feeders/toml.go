package feeders

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TomlFeeder reads a TOML file into a KernelConfig-shaped struct.
type TomlFeeder struct {
	Path string
}

// NewTomlFeeder creates a TomlFeeder reading from filePath.
func NewTomlFeeder(filePath string) *TomlFeeder {
	return &TomlFeeder{Path: filePath}
}

func (t *TomlFeeder) Feed(structure interface{}) error {
	if _, err := toml.DecodeFile(t.Path, structure); err != nil {
		return fmt.Errorf("toml feed: %w", err)
	}
	return nil
}

// FeedKey extracts a single top-level table from the TOML document
// into target.
func (t *TomlFeeder) FeedKey(key string, target interface{}) error {
	var whole map[string]toml.Primitive
	meta, err := toml.DecodeFile(t.Path, &whole)
	if err != nil {
		return fmt.Errorf("toml feed key %q: %w", key, err)
	}
	prim, ok := whole[key]
	if !ok {
		return fmt.Errorf("toml feed key %q: not found in %s", key, t.Path)
	}
	if err := meta.PrimitiveDecode(prim, target); err != nil {
		return fmt.Errorf("toml feed key %q: %w", key, err)
	}
	return nil
}
