package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Confirm)
	assert.Equal(t, "2s", cfg.DebounceWindow)
	assert.Empty(t, cfg.Exclude)
	assert.NotEmpty(t, cfg.Associations)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "openwith.toml", `
confirm = true
debounce_window = "5s"
exclude = ["^dired"]

[[associations]]
pattern = '\.md$'
program = "glow"
args = ["-p", "{file}"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Confirm)
	assert.Equal(t, "5s", cfg.DebounceWindow)
	assert.Equal(t, []string{"^dired"}, cfg.Exclude)

	// The user table replaces the default table wholesale
	require.Len(t, cfg.Associations, 1)
	assert.Equal(t, `\.md$`, cfg.Associations[0].Pattern)
	assert.Equal(t, "glow", cfg.Associations[0].Program)
	assert.Equal(t, []string{"-p", "{file}"}, cfg.Associations[0].Args)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "openwith.yaml", `
confirm: true
associations:
  - pattern: '\.md$'
    program: glow
    args: ["{file}"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Confirm)
	require.Len(t, cfg.Associations, 1)
	assert.Equal(t, "glow", cfg.Associations[0].Program)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "openwith.toml", "confirm = [broken")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestDiscover(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	assert.Empty(t, Discover())

	dir := filepath.Join(home, ConfigDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "openwith.toml")
	require.NoError(t, os.WriteFile(path, []byte("confirm = true\n"), 0644))

	assert.Equal(t, path, Discover())
}

func TestCompile(t *testing.T) {
	cfg := &Config{
		Confirm:        true,
		DebounceWindow: "3s",
		Exclude:        []string{"^recover"},
		Associations: []AssociationConfig{
			{Pattern: `\.pdf$`, Program: "acroread", Args: []string{"{file}"}},
			{Pattern: `\.avi$`, Program: "mplayer", Args: []string{"-idx", "{file}"}},
		},
	}

	rt, err := cfg.Compile()
	require.NoError(t, err)

	assert.True(t, rt.Confirm)
	assert.Equal(t, 3*time.Second, rt.Window)
	require.Len(t, rt.Exclude, 1)
	assert.True(t, rt.Exclude[0].MatchString("recover-session"))

	require.Len(t, rt.Table, 2)
	assoc, ok := associations.Resolve("clip.avi", rt.Table)
	require.True(t, ok)
	assert.Equal(t, []string{"-idx", "clip.avi"}, assoc.Invoke("clip.avi").Args)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		code errors.ErrorCode
	}{
		{
			name: "bad association pattern",
			cfg: Config{Associations: []AssociationConfig{
				{Pattern: `[unclosed`, Program: "x"},
			}},
			code: errors.ErrPatternCompile,
		},
		{
			name: "bad exclusion pattern",
			cfg:  Config{Exclude: []string{`[unclosed`}},
			code: errors.ErrPatternCompile,
		},
		{
			name: "empty pattern",
			cfg: Config{Associations: []AssociationConfig{
				{Pattern: "", Program: "x"},
			}},
			code: errors.ErrConfigValid,
		},
		{
			name: "empty program",
			cfg: Config{Associations: []AssociationConfig{
				{Pattern: `\.pdf$`, Program: ""},
			}},
			code: errors.ErrConfigValid,
		},
		{
			name: "bad debounce window",
			cfg:  Config{DebounceWindow: "soon"},
			code: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Compile()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code),
				"got code %s", errors.GetErrorCode(err))
		})
	}
}

func TestCompile_DefaultWindow(t *testing.T) {
	rt, err := (&Config{}).Compile()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, rt.Window)
}

func TestParseArgs(t *testing.T) {
	args := ParseArgs([]string{"-idx", "{file}", "{file}x"})

	require.Len(t, args, 3)
	assert.Equal(t, associations.Literal("-idx"), args[0])
	assert.Equal(t, associations.FilePlaceholder(), args[1])
	// Only the exact token is a placeholder
	assert.Equal(t, associations.Literal("{file}x"), args[2])
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Confirm)
	assert.NotEmpty(t, cfg.Associations)

	// The embedded defaults must always compile
	rt, err := cfg.Compile()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, rt.Window)

	assoc, ok := associations.Resolve("movie.avi", rt.Table)
	require.True(t, ok)
	assert.Equal(t, "mplayer", assoc.Program)
	assert.Equal(t, []string{"-idx", "movie.avi"}, assoc.Invoke("movie.avi").Args)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "# confirm = false")
	assert.Contains(t, content, "[[associations]]")

	// No uncommented value assignments survive
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["),
			"unexpected uncommented line: %q", line)
	}
}

func TestSave_Roundtrip(t *testing.T) {
	original, err := DefaultConfig()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sub", "openwith.toml")
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Confirm, loaded.Confirm)
	assert.Equal(t, original.DebounceWindow, loaded.DebounceWindow)
	assert.Equal(t, original.Associations, loaded.Associations)
}
