package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/pairwith/testutil"
)

func readSaved(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var saved map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &saved))
	return saved
}

func TestSaveConfig_SaveGlobal(t *testing.T) {
	configHome := testutil.IsolateHome(t)
	cfg := DefaultSaveConfig()
	path := filepath.Join(configHome, AppName, "config.yaml")

	require.NoError(t, cfg.SaveGlobal(KeyLogLevel, "debug"))
	require.NoError(t, cfg.SaveGlobal(KeyNoColor, "TRUE"))

	saved := readSaved(t, path)
	assert.Equal(t, "debug", saved[KeyLogLevel])
	assert.Equal(t, true, saved[KeyNoColor])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveConfig_SaveLocal(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultSaveConfig()

	require.NoError(t, cfg.SaveLocal(root, KeyNoreplyDomain, "example.com"))

	saved := readSaved(t, filepath.Join(root, LocalConfigName))
	assert.Equal(t, "example.com", saved[KeyNoreplyDomain])

	assert.Error(t, cfg.SaveLocal("", KeyLogLevel, "debug"))
	assert.Error(t, SaveConfig{}.SaveLocal(root, KeyLogLevel, "debug"))
}

func TestSaveConfig_GlobalPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "custom.yaml")
	cfg := SaveConfig{GlobalPath: path}

	require.NoError(t, cfg.SaveGlobal(KeyLogFormat, "json"))

	assert.Equal(t, "json", readSaved(t, path)[KeyLogFormat])
}

func TestSaveConfig_DeleteGlobalKey(t *testing.T) {
	configHome := testutil.IsolateHome(t)
	cfg := DefaultSaveConfig()

	// nothing to delete yet
	require.NoError(t, cfg.DeleteGlobalKey(KeyLogLevel))

	require.NoError(t, cfg.SaveGlobal(KeyLogLevel, "debug"))
	require.NoError(t, cfg.SaveGlobal(KeyLogFormat, "json"))
	require.NoError(t, cfg.DeleteGlobalKey(KeyLogLevel))

	saved := readSaved(t, filepath.Join(configHome, AppName, "config.yaml"))
	assert.NotContains(t, saved, KeyLogLevel)
	assert.Equal(t, "json", saved[KeyLogFormat])
}

func TestSaveConfig_SetAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := SaveConfig{GlobalPath: path}

	require.NoError(t, cfg.SaveGlobal(KeyLogLevel, "warn"))
	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "hundred-acre", []string{"@pooh", "piglet", " ", "pooh"}))
	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "bouncers", []string{"tigger"}))

	resolver, _ := newTestResolver(t, path, "")
	resolved := resolver.Resolve()

	assert.Equal(t, []string{"pooh", "piglet"}, resolved.Aliases()["hundred-acre"])
	assert.Equal(t, []string{"tigger"}, resolved.Aliases()["bouncers"])
	assert.Equal(t, "warn", resolved.Get(KeyLogLevel))

	// redefining replaces
	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "bouncers", []string{"roo"}))
	resolved = resolver.Resolve()
	assert.Equal(t, []string{"roo"}, resolved.Aliases()["bouncers"])
}

func TestSaveConfig_SetAliasLocal(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultSaveConfig()

	require.NoError(t, cfg.SetAlias(ScopeLocal, root, "team", []string{"owl"}))

	saved := readSaved(t, filepath.Join(root, LocalConfigName))
	assert.Equal(t, map[string]interface{}{"team": []interface{}{"owl"}}, saved["aliases"])
}

func TestSaveConfig_SetAliasErrors(t *testing.T) {
	cfg := SaveConfig{GlobalPath: filepath.Join(t.TempDir(), "config.yaml")}

	tests := []struct {
		name    string
		alias   string
		handles []string
		wantErr error
	}{
		{"self reference", "buddies", []string{"pooh", "@buddies"}, ErrAliasSelfReference},
		{"no handles", "buddies", []string{"", "@"}, ErrNoHandles},
		{"blank name", "  ", []string{"pooh"}, ErrInvalidAliasName},
		{"dotted name", "a.b", []string{"pooh"}, ErrInvalidAliasName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.SetAlias(ScopeGlobal, "", tt.alias, tt.handles)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := os.Stat(cfg.GlobalPath)
	assert.True(t, os.IsNotExist(err), "failed saves must not create the file")
}

func TestSaveConfig_DeleteAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := SaveConfig{GlobalPath: path}

	assert.ErrorIs(t, cfg.DeleteAlias(ScopeGlobal, "", "team"), ErrAliasNotFound)

	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "team", []string{"pooh"}))
	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "owls", []string{"owl"}))

	require.NoError(t, cfg.DeleteAlias(ScopeGlobal, "", "team"))
	assert.Equal(t, map[string]interface{}{"owls": []interface{}{"owl"}}, readSaved(t, path)["aliases"])

	require.NoError(t, cfg.DeleteAlias(ScopeGlobal, "", "owls"))
	assert.NotContains(t, readSaved(t, path), "aliases")
}

func TestSaveConfig_Path(t *testing.T) {
	cfg := DefaultSaveConfig()

	_, _, err := cfg.Path(Scope("team"), "")
	assert.Error(t, err)

	_, _, err = SaveConfig{}.Path(ScopeGlobal, "")
	assert.Error(t, err)

	path, perm, err := cfg.Path(ScopeLocal, "/repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/repo", LocalConfigName), path)
	assert.Equal(t, os.FileMode(0o644), perm)
}

func TestSaveConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "aliases:\n  team: [pooh, tigger]\n  owls: [owl\nphrases: [mobbing with]\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))
	cfg := SaveConfig{GlobalPath: path}

	// delete leaves a malformed file alone
	require.NoError(t, cfg.DeleteGlobalKey("key"))

	err := cfg.SetAlias(ScopeGlobal, "", "roo", []string{"roo1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	assert.Error(t, cfg.SaveGlobal("key", "value"))
	assert.Error(t, cfg.DeleteAlias(ScopeGlobal, "", "team"))

	_, err = cfg.Aliases(ScopeGlobal, "")
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestSaveConfig_Aliases(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultSaveConfig()
	cfg.GlobalPath = filepath.Join(t.TempDir(), "config.yaml")

	aliases, err := cfg.Aliases(ScopeGlobal, "")
	require.NoError(t, err)
	assert.Empty(t, aliases)

	require.NoError(t, cfg.SetAlias(ScopeGlobal, "", "team", []string{"pooh", "tigger"}))
	require.NoError(t, cfg.SetAlias(ScopeLocal, root, "owls", []string{"owl"}))

	aliases, err = cfg.Aliases(ScopeGlobal, "")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"team": {"pooh", "tigger"}}, map[string][]string(aliases))

	aliases, err = cfg.Aliases(ScopeLocal, root)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"owls": {"owl"}}, map[string][]string(aliases))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("True"))
	assert.Equal(t, false, parseValue("false"))
	assert.Equal(t, "pooh", parseValue("pooh"))
}
