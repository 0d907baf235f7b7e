package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare severity scalar or a two-element
// sequence of [severity, options-mapping] for a rule entry.
func (rs *RuleSetting) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		sev, err := ParseSeverity(value.Value)
		if err != nil {
			return err
		}
		rs.Severity = sev
		rs.Options = nil
		return nil

	case yaml.SequenceNode:
		if len(value.Content) < 1 || len(value.Content) > 2 {
			return fmt.Errorf("rule entry must be [severity] or [severity, options], got %d elements", len(value.Content))
		}
		sev, err := ParseSeverity(value.Content[0].Value)
		if err != nil {
			return err
		}
		rs.Severity = sev
		rs.Options = nil
		if len(value.Content) == 2 {
			opts := make(map[string]any)
			if err := value.Content[1].Decode(&opts); err != nil {
				return fmt.Errorf("decode rule options: %w", err)
			}
			rs.Options = opts
		}
		return nil

	default:
		return fmt.Errorf("rule entry must be a severity string or [severity, options]")
	}
}

// MarshalYAML emits the compact scalar form when no options are set.
func (rs RuleSetting) MarshalYAML() (any, error) {
	if len(rs.Options) == 0 {
		return string(rs.Severity), nil
	}
	return []any{string(rs.Severity), rs.Options}, nil
}

// UnmarshalTOML accepts the same shapes as UnmarshalYAML for TOML configs.
func (rs *RuleSetting) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		sev, err := ParseSeverity(v)
		if err != nil {
			return err
		}
		rs.Severity = sev
		rs.Options = nil
		return nil

	case []any:
		if len(v) < 1 || len(v) > 2 {
			return fmt.Errorf("rule entry must be [severity] or [severity, options], got %d elements", len(v))
		}
		str, ok := v[0].(string)
		if !ok {
			return fmt.Errorf("rule severity must be a string, got %T", v[0])
		}
		sev, err := ParseSeverity(str)
		if err != nil {
			return err
		}
		rs.Severity = sev
		rs.Options = nil
		if len(v) == 2 {
			opts, ok := v[1].(map[string]any)
			if !ok {
				return fmt.Errorf("rule options must be a table, got %T", v[1])
			}
			rs.Options = opts
		}
		return nil

	default:
		return fmt.Errorf("rule entry must be a severity string or [severity, options], got %T", data)
	}
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleSetting)
	}

	return cfg, nil
}
