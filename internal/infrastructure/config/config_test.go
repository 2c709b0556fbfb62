package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")

	m, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 101, cfg.Output.SplitCount)
	assert.Equal(t, filepath.Join(root, "data", "clonecfg", "clonecfg.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "data", "clonecfg", "out"), cfg.Output.Dir)
}

func TestManager_Load_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[source]
url = "https://api.example.com/b/1"
timeout_seconds = 5

[source.headers]
X-Master-Key = "secret"

[output]
package_name = "com.example.app"
split_count = 7
bridge_command = "adb-bridge push"
`), 0o644))
	t.Setenv("CLONECFG_LOG_LEVEL", "debug")

	m, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "https://api.example.com/b/1", cfg.Source.URL)
	assert.Equal(t, 5, cfg.Source.TimeoutSeconds)
	assert.Equal(t, "secret", cfg.Source.Headers["x-master-key"], "viper lower-cases map keys")
	assert.Equal(t, "com.example.app", cfg.Output.PackageName)
	assert.Equal(t, 7, cfg.Output.SplitCount)
	assert.Equal(t, "adb-bridge push", cfg.Output.BridgeCommand)
}

func TestManager_Load_RejectsInvalid(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[output]
split_count = -1
package_name = "not a package"
`), 0o644))

	m, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.split_count")
	assert.Contains(t, err.Error(), "output.package_name")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "cfg")
	m, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Output.PackageName = "com.example.clone"
	cfg.Watch.DebounceMs = 50
	require.NoError(t, m.Save(cfg))

	reloaded, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "com.example.clone", reloaded.Get().Output.PackageName)
	assert.Equal(t, 50, reloaded.Get().Watch.DebounceMs)
}

func TestManager_SaveDefaultsFillsDatabasePath(t *testing.T) {
	root := isolateXDG(t)
	m, err := NewManager(WithConfigDir(filepath.Join(root, "cfg")))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := DefaultConfig()
	require.Empty(t, cfg.Database.Path)
	require.NoError(t, m.Save(cfg))

	assert.Equal(t, filepath.Join(root, "data", "clonecfg", "clonecfg.sqlite"), m.Get().Database.Path)
}

func TestManager_GetBeforeLoad(t *testing.T) {
	isolateXDG(t)
	m, err := NewManager(WithConfigDir(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Output.SplitCount, m.Get().Output.SplitCount)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "relative url", mutate: func(c *Config) { c.Source.URL = "/config" }, wantErr: "source.url"},
		{name: "ftp url", mutate: func(c *Config) { c.Source.URL = "ftp://x/y" }, wantErr: "source.url"},
		{name: "zero split", mutate: func(c *Config) { c.Output.SplitCount = 0 }, wantErr: "output.split_count"},
		{name: "package", mutate: func(c *Config) { c.Output.PackageName = "app" }, wantErr: "output.package_name"},
		{name: "no destination", mutate: func(c *Config) { c.Output.Dir = "" }, wantErr: "output.dir"},
		{name: "bridge without dir", mutate: func(c *Config) { c.Output.Dir = ""; c.Output.BridgeCommand = "push" }},
		{name: "negative keep", mutate: func(c *Config) { c.Database.KeepPerPackage = -1 }, wantErr: "keep_per_package"},
		{name: "file log needs dir", mutate: func(c *Config) { c.Logging.EnableFileLog = true; c.Logging.LogDir = "" }, wantErr: "log_dir"},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.DebounceMs = -5 }, wantErr: "watch.debounce_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Dir = "/tmp/out"
			cfg.Database.Path = "/tmp/clonecfg.sqlite"
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidPackageName(t *testing.T) {
	assert.True(t, ValidPackageName("com.example.app"))
	assert.True(t, ValidPackageName("a.b_2"))
	assert.False(t, ValidPackageName("example"))
	assert.False(t, ValidPackageName("com..app"))
	assert.False(t, ValidPackageName("1com.app"))
}

func TestWriteConfigOrdered_SortsSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Source.Headers = map[string]string{"X-Master-Key": "k"}

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			sections = append(sections, strings.Trim(trimmed, "[]"))
		}
	}
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i])
	}
	assert.Contains(t, sections, "source.headers")
}

func TestSortTOMLSections(t *testing.T) {
	in := "title = \"x\"\n\n[zeta]\na = 1\n\n[alpha]\nb = 2\n"

	assert.Equal(t, "title = \"x\"\n\n[alpha]\nb = 2\n\n[zeta]\na = 1\n", sortTOMLSections(in))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()

	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"split_count"`)
	assert.Contains(t, s, `"bridge_command"`)
	assert.Contains(t, s, `"clonecfg configuration"`)
}

func TestLoadTables_Defaults(t *testing.T) {
	tables, err := LoadTables("")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTables(), tables)
}

func TestLoadTables_OverridesNamedTablesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
custom_option_keys = ["changeAndroidId"]

[[prefix_aliases]]
parent = "addRain"
prefix = "rain"

[[composites]]
key = "spoofGpsTrack"
category = "privacy"
members = [
  { key = "spoofGpsTrackIndex", default = 0 },
  { key = "spoofGpsTrackName", default = "none" },
  { key = "spoofGpsTrackLoop", default = true },
]
`), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"changeAndroidId"}, tables.CustomOptionKeys)
	assert.Equal(t, []entity.PrefixAlias{{Parent: "addRain", Prefix: "rain"}}, tables.PrefixAliases)
	assert.Equal(t, entity.DefaultTables().CustomEditorKeys, tables.CustomEditorKeys, "unnamed tables keep defaults")

	group, ok := tables.Composite("spoofGpsTrack")
	require.True(t, ok)
	require.Len(t, group.Members, 3)
	assert.Equal(t, entity.Number(0), group.Members[0].Default)
	assert.Equal(t, entity.Text("none"), group.Members[1].Default)
	assert.Equal(t, entity.Bool(true), group.Members[2].Default)
}

func TestLoadTables_Errors(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("custom_option_keys = ["), 0o644))
	_, err = LoadTables(path)
	require.Error(t, err)
}
