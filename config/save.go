package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/pairwith/pairing"
)

// Alias errors.
var (
	// ErrAliasSelfReference indicates an alias lists its own name as a handle.
	ErrAliasSelfReference = errors.New("an alias cannot reference itself")

	// ErrAliasNotFound indicates the alias does not exist in the config file.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrInvalidAliasName indicates the alias name is blank or contains a dot.
	ErrInvalidAliasName = errors.New("invalid alias name")

	// ErrNoHandles indicates an alias was given no handles.
	ErrNoHandles = errors.New("no handles given")
)

// Scope selects which config file a save operation writes.
type Scope string

// Save scopes.
const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under the user config directory.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// GlobalPath overrides the global config location entirely.
	GlobalPath string

	// LocalConfigName is the filename for local config in git root.
	LocalConfigName string
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// Path returns the file a scope writes to and the mode new files get.
func (c SaveConfig) Path(scope Scope, gitRoot string) (string, os.FileMode, error) {
	switch scope {
	case ScopeGlobal:
		if c.GlobalPath != "" {
			return c.GlobalPath, 0o600, nil
		}
		if c.GlobalConfigDir == "" {
			return "", 0, fmt.Errorf("global config directory not configured")
		}
		path, err := globalConfigPath(c.GlobalConfigDir, c.globalConfigFile())
		return path, 0o600, err
	case ScopeLocal:
		if gitRoot == "" {
			return "", 0, fmt.Errorf("git root not found")
		}
		if c.LocalConfigName == "" {
			return "", 0, fmt.Errorf("local config name not configured")
		}
		// Local config is shared and should be readable
		return filepath.Join(gitRoot, c.LocalConfigName), 0o644, nil
	default:
		return "", 0, fmt.Errorf("unknown config scope: %q", scope)
	}
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	return c.update(ScopeGlobal, "", func(existing map[string]interface{}) error {
		existing[key] = parseValue(value)
		return nil
	})
}

// SaveLocal saves a key-value pair to the local config file in the git root.
func (c SaveConfig) SaveLocal(gitRoot, key, value string) error {
	return c.update(ScopeLocal, gitRoot, func(existing map[string]interface{}) error {
		existing[key] = parseValue(value)
		return nil
	})
}

// DeleteGlobalKey removes a key from the global config.
// A missing or unreadable file is left alone.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	path, perm, err := c.Path(ScopeGlobal, "")
	if err != nil {
		return err
	}

	existing, err := readYAML(path)
	if err != nil || existing == nil {
		return nil // Nothing to delete
	}

	delete(existing, key)
	return writeYAML(path, perm, existing)
}

// SetAlias stores an alias for handles, replacing any previous definition.
// Handles are stored without the "@" marker.
func (c SaveConfig) SetAlias(scope Scope, gitRoot, name string, handles []string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAliasName, name)
	}

	cleaned := lo.Uniq(lo.FilterMap(handles, func(h string, _ int) (string, bool) {
		h = strings.TrimPrefix(strings.TrimSpace(h), "@")
		return h, h != ""
	}))
	if len(cleaned) == 0 {
		return fmt.Errorf("alias %s: %w", name, ErrNoHandles)
	}
	if lo.Contains(cleaned, name) {
		return fmt.Errorf("alias %s: %w", name, ErrAliasSelfReference)
	}

	return c.update(scope, gitRoot, func(existing map[string]interface{}) error {
		aliases := aliasSection(existing)
		aliases[name] = cleaned
		existing[aliasKey] = aliases
		return nil
	})
}

// Aliases returns the aliases saved in the config file of the given scope.
// A missing file has none.
func (c SaveConfig) Aliases(scope Scope, gitRoot string) (pairing.Aliases, error) {
	path, _, err := c.Path(scope, gitRoot)
	if err != nil {
		return nil, err
	}

	existing, err := readYAML(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	aliases := pairing.Aliases{}
	for name, value := range aliasSection(existing) {
		aliases[name] = splitList(toString(value))
	}
	return aliases, nil
}

// DeleteAlias removes an alias from the config file of the given scope.
func (c SaveConfig) DeleteAlias(scope Scope, gitRoot, name string) error {
	return c.update(scope, gitRoot, func(existing map[string]interface{}) error {
		aliases := aliasSection(existing)
		if _, ok := aliases[name]; !ok {
			return fmt.Errorf("alias %s: %w", name, ErrAliasNotFound)
		}
		delete(aliases, name)
		if len(aliases) == 0 {
			delete(existing, aliasKey)
		} else {
			existing[aliasKey] = aliases
		}
		return nil
	})
}

const aliasKey = "aliases"

func aliasSection(existing map[string]interface{}) map[string]interface{} {
	if section, ok := existing[aliasKey].(map[string]interface{}); ok {
		return section
	}
	return make(map[string]interface{})
}

// update loads the scope's file, applies fn and writes it back.
// A file that cannot be read or parsed is left untouched.
func (c SaveConfig) update(scope Scope, gitRoot string, fn func(map[string]interface{}) error) error {
	path, perm, err := c.Path(scope, gitRoot)
	if err != nil {
		return err
	}

	existing, err := readYAML(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	if err := fn(existing); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return writeYAML(path, perm, existing)
}

func readYAML(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return existing, nil
}

func writeYAML(path string, perm os.FileMode, values map[string]interface{}) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
