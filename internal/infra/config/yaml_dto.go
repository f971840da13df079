package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLConfig struct {
	Cartlab YAMLCartlab `yaml:"cartlab"`
}

type YAMLCartlab struct {
	Reader YAMLReader `yaml:"reader"`
	Point  YAMLPoint  `yaml:"point"`
	Table  YAMLTable  `yaml:"table"`
	Cases  []YAMLCase `yaml:"cases"`
}

type YAMLReader struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type YAMLPoint struct {
	Limit *int `yaml:"limit"`
}

type YAMLTable struct {
	Title     *string `yaml:"title"`
	Column    *int    `yaml:"column"`
	Precision *int    `yaml:"precision"`
}

// YAMLCase accepts either a bare scalar ("123.45") or a mapping
// ({input: "123.45", expect: "yes"}).
type YAMLCase struct {
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`
}

func (c *YAMLCase) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		// Keep the literal text: 007 and 5. must not be reformatted.
		c.Input = value.Value
		c.Expect = ""
		return nil
	case yaml.MappingNode:
		var raw struct {
			Input  yaml.Node `yaml:"input"`
			Expect string    `yaml:"expect"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw.Input.Kind != 0 && raw.Input.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: case input must be a scalar", raw.Input.Line)
		}
		c.Input = raw.Input.Value
		c.Expect = raw.Expect
		return nil
	default:
		return fmt.Errorf("line %d: case must be a scalar or a mapping", value.Line)
	}
}
