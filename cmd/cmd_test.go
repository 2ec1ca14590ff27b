package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKeysCommand(t *testing.T) {
	cli := NewCLI()
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"keys"})

	require.NoError(t, cli.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "KEY")
	assert.Contains(t, lines[0], "ACTION")

	var suspendKeys []string
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, 2, line)
		if fields[1] == "suspend-process" {
			suspendKeys = append(suspendKeys, fields[0])
		}
		assert.NotEqual(t, "suspend", fields[1])
	}
	assert.Equal(t, []string{"Ctrl+Z", "Ctrl+z"}, suspendKeys)
	assert.NotContains(t, out.String(), "\x00")
}

func TestNewCLIFlags(t *testing.T) {
	cli := NewCLI()

	flag := cli.Flags().Lookup("nohistory")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)

	keys, _, err := cli.Find([]string{"keys"})
	require.NoError(t, err)
	assert.Equal(t, "keys", keys.Name())

	assert.Contains(t, cli.UsageTemplate(), "SUSPENDLINE_NOHISTORY")
}

func TestRejectsArguments(t *testing.T) {
	cli := NewCLI()
	cli.SetOut(&bytes.Buffer{})
	cli.SetErr(&bytes.Buffer{})
	cli.SetArgs([]string{"unexpected"})

	assert.Error(t, cli.Execute())
}

func TestKeysCommandYAML(t *testing.T) {
	cli := NewCLI()
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"keys", "--format", "yaml"})

	require.NoError(t, cli.Execute())

	var bindings []keyBinding
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &bindings))
	assert.Equal(t, effectiveBindings(), bindings)
	assert.Contains(t, bindings, keyBinding{Key: "Ctrl+z", Action: "suspend-process"})
	assert.Contains(t, bindings, keyBinding{Key: "Ctrl+Z", Action: "suspend-process"})
	assert.Contains(t, bindings, keyBinding{Key: "Ctrl+c", Action: "interrupt"})
}

func TestKeysCommandUnknownFormat(t *testing.T) {
	cli := NewCLI()
	cli.SetOut(&bytes.Buffer{})
	cli.SetErr(&bytes.Buffer{})
	cli.SetArgs([]string{"keys", "-f", "xml"})

	err := cli.Execute()
	assert.ErrorContains(t, err, `unknown format "xml"`)
}
