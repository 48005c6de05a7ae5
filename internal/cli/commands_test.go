package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oceanicNextYAML = `system: "base16"
name: "OceanicNext"
author: "https://github.com/voronianski/oceanic-next-color-scheme"
variant: "dark"
palette:
  base00: "#1b2b34"
  base01: "#343d46"
  base02: "#4f5b66"
  base03: "#65737e"
  base04: "#a7adba"
  base05: "#c0c5ce"
  base06: "#cdd3de"
  base07: "#d8dee9"
  base08: "#ec5f67"
  base09: "#f99157"
  base0A: "#fac863"
  base0B: "#99c794"
  base0C: "#5fb3b3"
  base0D: "#6699cc"
  base0E: "#c594c5"
  base0F: "#ab7967"
`

func installSchemes(t *testing.T, d *testDirs) {
	t.Helper()
	d.writeFile(t, "schemes/base16/oceanicnext.yaml", oceanicNextYAML)
	d.writeFile(t, "schemes/base16/ayu-dark.yaml", "palette:\n  base00: \"0f1419\"\n")
	d.writeFile(t, "schemes/base24/ayu-dark.yaml", "palette:\n  base00: \"0f1419\"\n")
}

func TestApplyCommand_HookOutput(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)
	d.writeConfig(t, `
hooks = ["echo 'This '", "echo 'is '", "echo 'expected '", "echo 'output.'"]
`)

	stdout, stderr, err := run(t, "apply", "base16-oceanicnext")
	require.NoError(t, err)
	assert.Equal(t, "This\nis\nexpected\noutput.", stdout)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(filepath.Join(d.data, "current_scheme"))
	require.NoError(t, err)
	assert.Equal(t, "base16-oceanicnext", string(data))

	stdout, _, err = run(t, "current")
	require.NoError(t, err)
	assert.Equal(t, "base16-oceanicnext\n", stdout)
}

func TestApplyCommand_ItemHook(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)
	d.writeFile(t, "repos/tinted-vim/colors/base16-oceanicnext.vim", "colorscheme base16-oceanicnext")
	d.writeConfig(t, `
[[items]]
path = "https://github.com/tinted-theming/tinted-vim"
name = "tinted-vim"
themes-dir = "colors"
hook = "echo \"path: %f\""
`)

	stdout, stderr, err := run(t, "apply", "base16-oceanicnext")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	artifact := filepath.Join(d.data, "tinted-vim-colors-file.vim")
	assert.Equal(t, "path: "+artifact, stdout)
	assert.FileExists(t, artifact)
}

func TestApplyCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		install bool
		config  string
		scheme  string
		wantErr string
	}{
		{
			name:    "invalid format",
			install: true,
			scheme:  "oceanicnext",
			wantErr: "Invalid scheme name. Make sure the scheme system is prefixed <SCHEME_SYSTEM>-<SCHEME_NAME>, eg: `base16-ayu-dark`",
		},
		{
			name:    "unsupported system",
			install: true,
			scheme:  "base99-ocean",
			wantErr: `Invalid scheme name. Make sure your scheme is prefixed with a supprted system ("base16" or "base24"), eg: base16-base99-ocean`,
		},
		{
			name:    "not installed",
			scheme:  "base16-oceanicnext",
			wantErr: "Schemes do not exist, run install and try again: `tintctl install`",
		},
		{
			name:    "not found",
			install: true,
			scheme:  "base16-nope",
			wantErr: "Scheme does not exist: base16-nope",
		},
		{
			name:    "template missing",
			install: true,
			scheme:  "base16-oceanicnext",
			config: `
[[items]]
path = "https://github.com/tinted-theming/tinted-tmux"
name = "tinted-tmux"
themes-dir = "colors"
hook = "echo should-not-run"
`,
			wantErr: `Template missing for item "tinted-tmux"`,
		},
		{
			name:    "invalid config",
			install: true,
			scheme:  "base16-oceanicnext",
			config:  `log-level = "loud"`,
			wantErr: "log-level must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupTestEnv(t)
			if tt.install {
				installSchemes(t, d)
			}
			if tt.config != "" {
				d.writeConfig(t, tt.config)
			}

			stdout, _, err := run(t, "apply", tt.scheme)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, stdout)
			assert.NoFileExists(t, filepath.Join(d.data, "current_scheme"))
		})
	}
}

func TestApplyCommand_JSON(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)
	d.writeConfig(t, `hooks = ["echo hi"]`)

	stdout, _, err := run(t, "apply", "base16-oceanicnext", "--json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "base16-oceanicnext", result["scheme"])
	assert.Equal(t, "done", result["state"])
	assert.Equal(t, "hi", result["output"])
}

func TestApplyCommand_DataDirFlag(t *testing.T) {
	d := setupTestEnv(t)
	other := filepath.Join(t.TempDir(), "other")
	require.NoError(t, os.MkdirAll(filepath.Join(other, "schemes", "base24"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(other, "schemes", "base24", "dracula.yaml"), []byte("palette:\n  base00: \"282936\"\n"), 0644))

	_, _, err := run(t, "apply", "base24-dracula", "--data-dir", other)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(other, "current_scheme"))
	assert.NoFileExists(t, filepath.Join(d.data, "current_scheme"))
}

func TestListCommand(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)

	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "base16-ayu-dark\nbase24-ayu-dark\nbase16-oceanicnext\n", stdout)

	stdout, _, err = run(t, "list", "--json")
	require.NoError(t, err)
	var ids []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &ids))
	assert.Equal(t, []string{"base16-ayu-dark", "base24-ayu-dark", "base16-oceanicnext"}, ids)
}

func TestListCommand_NotInstalled(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := run(t, "list")
	require.Error(t, err)
	assert.Equal(t, "Schemes do not exist, run install and try again: `tintctl install`", err.Error())
	assert.Empty(t, stdout)
}

func TestCurrentCommand_NothingApplied(t *testing.T) {
	setupTestEnv(t)

	_, _, err := run(t, "current")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no current scheme")
}

func TestInfoCommand(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)

	stdout, _, err := run(t, "info", "base16-oceanicnext")
	require.NoError(t, err)
	assert.Contains(t, stdout, "base16-oceanicnext")
	assert.Contains(t, stdout, "OceanicNext")
	assert.Contains(t, stdout, "16 colors")
	assert.Contains(t, stdout, "#1b2b34")
	assert.Contains(t, stdout, "#ab7967")

	stdout, _, err = run(t, "info", "base16-oceanicnext", "--json")
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &meta))
	assert.Equal(t, "dark", meta["variant"])
}

func TestInfoCommand_DefaultsToCurrent(t *testing.T) {
	d := setupTestEnv(t)
	installSchemes(t, d)

	_, _, err := run(t, "info")
	require.Error(t, err)

	_, _, err = run(t, "apply", "base16-oceanicnext")
	require.NoError(t, err)

	stdout, _, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "OceanicNext")
}

func TestConfigCommand(t *testing.T) {
	d := setupTestEnv(t)
	d.writeConfig(t, `
shell = "bash"
hooks = ["echo done"]
`)

	stdout, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shell: bash")
	assert.Contains(t, stdout, "- echo done")

	stdout, _, err = run(t, "config", "--config-path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.config, "config.toml")+"\n", stdout)

	stdout, _, err = run(t, "config", "--data-dir-path")
	require.NoError(t, err)
	assert.Equal(t, d.data+"\n", stdout)
}

func TestConfigCommand_EnvOverride(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("TINTCTL_SHELL", "zsh")

	stdout, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shell: zsh")
}

func TestSetAndInitCommands(t *testing.T) {
	d := setupTestEnv(t)

	stdout, _, err := run(t, "init")
	require.NoError(t, err)
	assert.Equal(t, "Config files don't exist, run `tintctl set <THEME_NAME>` to create them\n", stdout)

	d.writeFile(t, "repos/base16-shell/scripts/base16-ocean.sh", "color00=\"2b/30/3b\" # ocean\n")

	stdout, _, err = run(t, "set", "ocean")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Theme set to: ocean")

	theme, err := os.ReadFile(filepath.Join(d.config, "base16_shell_theme"))
	require.NoError(t, err)
	assert.Contains(t, string(theme), "ocean")
	name, err := os.ReadFile(filepath.Join(d.config, "theme_name"))
	require.NoError(t, err)
	assert.Equal(t, "ocean", string(name))

	stdout, _, err = run(t, "init")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, _, err = run(t, "set", "base16-missing")
	require.Error(t, err)
	assert.Equal(t, "Scheme does not exist: missing", err.Error())
}

func TestApplyCommand_InvalidNameCreatesNothing(t *testing.T) {
	d := setupTestEnv(t)

	_, _, err := run(t, "apply", "ocean")
	require.Error(t, err)
	assert.NoDirExists(t, d.data)
}

func TestInitCommand_MissingConfigDir(t *testing.T) {
	setupTestEnv(t)
	configDir := filepath.Join(t.TempDir(), "base16_shell_test_cli_init_command_empty_config")

	stdout, _, err := run(t, "init", "--config="+configDir)
	require.NoError(t, err)
	assert.Equal(t, "Config files don't exist, run `tintctl set <THEME_NAME>` to create them\n", stdout)
	assert.NoDirExists(t, configDir)
}

func TestSetCommand_ConfigFlag(t *testing.T) {
	d := setupTestEnv(t)
	d.writeFile(t, "repos/base16-shell/scripts/base16-ocean.sh", "echo \"ocean colors\"\n")
	configDir := filepath.Join(t.TempDir(), "base16_shell_test_cli_set_command")

	stdout, _, err := run(t, "set", "base16-ocean", "--config="+configDir)
	require.NoError(t, err)
	assert.Equal(t, "ocean colors\nTheme set to: ocean\n", stdout)

	theme, err := os.ReadFile(filepath.Join(configDir, "base16_shell_theme"))
	require.NoError(t, err)
	assert.Equal(t, "echo \"ocean colors\"\n", string(theme))
	name, err := os.ReadFile(filepath.Join(configDir, "theme_name"))
	require.NoError(t, err)
	assert.Equal(t, "ocean", string(name))
	assert.NoFileExists(t, filepath.Join(d.config, "theme_name"))

	stdout, _, err = run(t, "init", "--config="+configDir)
	require.NoError(t, err)
	assert.Equal(t, "ocean colors\n", stdout)
}
