package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w-029/DP-TemplatePattern/pkg/beverage"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	cmd := NewRootCmd(logs)
	cmd.SetOut(out)
	cmd.SetErr(logs)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "barista.yaml")}, args...))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func TestBrew(t *testing.T) {
	tcs := map[string]struct {
		args     []string
		expected string
	}{
		"default order": {
			args:     []string{"brew"},
			expected: "Boiling water\nDripping Coffee through filter\nPouring into cup\nAdding Sugar and Milk\n",
		},
		"coffee": {
			args:     []string{"brew", "coffee"},
			expected: "Boiling water\nDripping Coffee through filter\nPouring into cup\nAdding Sugar and Milk\n",
		},
		"coffee without condiments": {
			args:     []string{"brew", "coffee", "--no-condiments"},
			expected: "Boiling water\nDripping Coffee through filter\nPouring into cup\n",
		},
		"black coffee then tea": {
			args: []string{"brew", "black-coffee", "tea"},
			expected: "Boiling water\nDripping Coffee through filter\nPouring into cup\n" +
				"Boiling water\nSteeping the tea\nPouring into cup\nAdding Lemon\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestBrewUnknownBeverage(t *testing.T) {
	out, _, err := run(t, "brew", "espresso")
	assert.ErrorIs(t, err, beverage.ErrUnknownBeverage)
	assert.Empty(t, out)
}

func TestBrewConcurrent(t *testing.T) {
	out, _, err := run(t, "brew", "coffee", "tea", "coffee", "--concurrency", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("Boiling water\n")))
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("Adding Sugar and Milk\n")))
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("Adding Lemon\n")))
}

func TestBrewGraphAndMeasure(t *testing.T) {
	graphFile := filepath.Join(t.TempDir(), "recipe.dot")

	_, logs, err := run(t, "brew", "coffee", "black-coffee", "--graph", graphFile, "--measure", "--debug")
	require.NoError(t, err)

	content, err := os.ReadFile(graphFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"boil water" -> "Coffee/brew"`)
	assert.Contains(t, logs, "step measure")
	assert.Contains(t, logs, "starting step")
	assert.Contains(t, logs, "recipe graph written")
}

func TestMenu(t *testing.T) {
	out, _, err := run(t, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "- name: black-coffee\n  description: filter coffee, no condiments\n  condiments: false\n")
	assert.Contains(t, out, "- name: tea\n")
}
