package feeders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YamlFeeder reads a YAML file into a KernelConfig-shaped struct.
type YamlFeeder struct {
	Path string
}

// NewYamlFeeder creates a YamlFeeder reading from filePath.
func NewYamlFeeder(filePath string) *YamlFeeder {
	return &YamlFeeder{Path: filePath}
}

func (y *YamlFeeder) Feed(structure interface{}) error {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return fmt.Errorf("yaml feed: %w", err)
	}
	if err := yaml.Unmarshal(data, structure); err != nil {
		return fmt.Errorf("yaml feed: %w", err)
	}
	return nil
}

// FeedKey extracts a single top-level key from the YAML document into
// target, for layouts that nest kernel config under a named section
// alongside unrelated application config.
func (y *YamlFeeder) FeedKey(key string, target interface{}) error {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return fmt.Errorf("yaml feed key %q: %w", key, err)
	}
	var whole map[string]yaml.Node
	if err := yaml.Unmarshal(data, &whole); err != nil {
		return fmt.Errorf("yaml feed key %q: %w", key, err)
	}
	node, ok := whole[key]
	if !ok {
		return fmt.Errorf("yaml feed key %q: not found in %s", key, y.Path)
	}
	if err := node.Decode(target); err != nil {
		return fmt.Errorf("yaml feed key %q: %w", key, err)
	}
	return nil
}
