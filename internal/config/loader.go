package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RulesFileName is the file looked up in the user and local config directories.
const RulesFileName = "drops.yaml"

// LoadRules loads the drop catcher rule sets.
// Search order: customPath -> ~/.dropcatch/configs/drops.yaml -> ./configs/drops.yaml -> embedded default.
//
// Files are decoded on top of the hardcoded defaults, so a file only needs the
// keys it changes. An explicit customPath that cannot be read, parsed or
// validated is an error; the implicit locations are skipped when broken.
func LoadRules(customPath string) (RulesFile, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RulesFile{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		rules, err := ParseRules(data)
		if err != nil {
			return RulesFile{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return rules, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(RulesFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if rules, err := ParseRules(data); err == nil {
				return rules, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", RulesFileName)); err == nil {
		if rules, err := ParseRules(data); err == nil {
			return rules, nil
		}
	}

	// Use embedded default YAML
	rules, err := ParseRules(defaultRulesYAML)
	if err != nil {
		return DefaultRules(), nil // Fallback to hardcoded if embed fails
	}
	return rules, nil
}

// ParseRules decodes a rules document over the hardcoded defaults and
// validates both variants.
func ParseRules(data []byte) (RulesFile, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RulesFile{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := rules.Classic.Validate(); err != nil {
		return RulesFile{}, err
	}
	if err := rules.Timed.Validate(); err != nil {
		return RulesFile{}, err
	}
	return rules, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dropcatch", "configs", filename)
}
