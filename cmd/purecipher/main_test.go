package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/purecipher/presets"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digitsRecipe = `
[[recipes]]
name = "shift-digits"
description = "rotate ASCII digits by five"
[[recipes.edits]]
op = "rotate"
from = "0"
to = "9"
offset = 5

[[recipes]]
name = "swap-ab"
[[recipes.edits]]
op = "swap"
left = "a"
right = "b"
`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeRecipe(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ciphers.toml")
	require.NoError(t, os.WriteFile(path, []byte(digitsRecipe), 0o600))
	return path
}

func TestValidateCLIConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      *CLIConfig
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid preset",
			config: &CLIConfig{preset: "rot13", logLevel: "warn"},
		},
		{
			name:   "valid recipe",
			config: &CLIConfig{recipeFile: "x.toml", recipeName: "x", logLevel: "INFO"},
		},
		{
			name:        "name without recipe",
			config:      &CLIConfig{preset: "rot13", recipeName: "x", logLevel: "warn"},
			wantErr:     true,
			errContains: "-name requires -recipe",
		},
		{
			name:        "empty preset",
			config:      &CLIConfig{logLevel: "warn"},
			wantErr:     true,
			errContains: "preset name cannot be empty",
		},
		{
			name:        "describe and list",
			config:      &CLIConfig{preset: "rot13", describe: true, list: true, logLevel: "warn"},
			wantErr:     true,
			errContains: "cannot be combined",
		},
		{
			name:    "bad log level",
			config:  &CLIConfig{preset: "rot13", logLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCLIConfig(tt.config)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestRunEnciphersArguments(t *testing.T) {
	code, out, _ := runCLI(t, "", "We", "attack", "at", "dawn.")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Zh dwwdfn dw gdzq.\n", out)

	code, out, _ = runCLI(t, "", "-preset", "rot13", "Hello,", "World!")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Uryyb, Jbeyq!\n", out)
}

func TestRunRoundTripsStdin(t *testing.T) {
	input := "Pure ciphers are the BEST!\nsecond line"

	code, enciphered, _ := runCLI(t, input, "-preset", "leet")
	require.Equal(t, 0, code)
	assert.Equal(t, "Pur3 c!ph3rs @r3 1h3 BE5Ti\ns3cond l!n3", enciphered)

	code, deciphered, _ := runCLI(t, enciphered, "-preset", "leet", "-decipher")
	require.Equal(t, 0, code)
	assert.Equal(t, input, deciphered)
}

func TestRunWithRecipe(t *testing.T) {
	path := writeRecipe(t)

	code, out, _ := runCLI(t, "", "-recipe", path, "2024")
	assert.Equal(t, 0, code)
	assert.Equal(t, "7579\n", out)

	code, out, _ = runCLI(t, "", "-recipe", path, "-name", "swap-ab", "abba")
	assert.Equal(t, 0, code)
	assert.Equal(t, "baab\n", out)

	code, _, errOut := runCLI(t, "", "-recipe", path, "-name", "missing", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `recipe "missing" not found`)
}

func TestRunLogsRecipeSummaryAtInfo(t *testing.T) {
	path := writeRecipe(t)

	var logs bytes.Buffer
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	logrus.SetOutput(&logs)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})

	code, out, _ := runCLI(t, "", "-log-level", "info", "-recipe", path, "-name", "swap-ab", "ab")
	require.Equal(t, 0, code)
	assert.Equal(t, "ba\n", out)
	assert.Contains(t, logs.String(), "Recipe loaded")
	assert.Contains(t, logs.String(), "recipe=swap-ab")

	logs.Reset()
	code, _, _ = runCLI(t, "", "-recipe", path, "ab")
	require.Equal(t, 0, code)
	assert.Empty(t, logs.String())
}

func TestRunUnknownPreset(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-preset", "enigma", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Failed to select cipher")
	assert.Contains(t, errOut, presets.ErrUnknownPreset.Error())
}

func TestRunList(t *testing.T) {
	path := writeRecipe(t)

	code, out, _ := runCLI(t, "", "-list", "-recipe", path)
	require.Equal(t, 0, code)
	for _, name := range []string{presets.NameCaesar, presets.NameRot13, presets.NameLeet, presets.NameNull} {
		assert.Contains(t, out, "  "+name+"\n")
	}
	assert.Contains(t, out, "shift-digits - rotate ASCII digits by five")
	assert.Contains(t, out, "  swap-ab\n")
}

func TestRunDescribe(t *testing.T) {
	code, out, _ := runCLI(t, "", "-describe", "-preset", "caesar")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "fingerprint: "+presets.Caesar().Fingerprint())
	assert.Contains(t, out, "reversible:  true")

	code, out, _ = runCLI(t, "", "-describe", "-preset", "null")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "no substitution")
}

func TestRunHelpAndBadFlags(t *testing.T) {
	code, out, _ := runCLI(t, "", "-help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "-preset")

	code, _, _ = runCLI(t, "", "-no-such-flag")
	assert.Equal(t, 2, code)

	code, _, errOut := runCLI(t, "", "-log-level", "loud", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Configuration error")
}
