package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/numerals"
)

// run executes the CLI with args and stdin, using configuration defaults.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseArgs(t *testing.T) {
	out, err := run(t, "", "parse", "dreizehn", "dritte", "einte")
	require.NoError(t, err)

	assert.Equal(t, "dreizehn\t13 (cardinal)\ndritte\t3 (ordinal)\neinte\tabsent\n", out)
}

func TestParseLangFlag(t *testing.T) {
	out, err := run(t, "", "parse", "--lang", "fr-BE", "septante", "quatre-vingt-dix-septième")
	require.NoError(t, err)

	assert.Equal(t, "septante\t70 (cardinal)\nquatre-vingt-dix-septième\t97 (ordinal)\n", out)
}

func TestParseStdinJSON(t *testing.T) {
	out, err := run(t, "tweeduizend vijfhonderd\n\ntweeste\ndriekwart\n", "parse", "-l", "nl", "--strict", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var got []parseOutput
	for _, l := range lines {
		var o parseOutput
		require.NoError(t, json.Unmarshal([]byte(l), &o), l)
		got = append(got, o)
	}
	assert.Equal(t, "tweeduizend vijfhonderd", got[0].Word)
	require.NotNil(t, got[0].Value)
	assert.Equal(t, "2500", got[0].Value.String())
	assert.Equal(t, "absent", got[1].Class, "strict spelling rejects tweeste")
	assert.Nil(t, got[1].Value)
	assert.Equal(t, "0.75", got[2].Value.String())
	assert.Equal(t, "nl", got[2].Lang)
}

func TestParseUnknownLanguage(t *testing.T) {
	_, err := run(t, "", "parse", "--lang", "en", "three")
	require.Error(t, err)
	assert.ErrorIs(t, err, numerals.ErrUnknownLanguage)
}

func TestTable(t *testing.T) {
	out, err := run(t, "", "table", "--lang", "nl")
	require.NoError(t, err)

	p, err := numerals.LookupString("nl")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(p.Table().Entries()))
	assert.Regexp(t, `^0\s+nul$`, lines[0])
	assert.Regexp(t, `^1\s+een, één$`, lines[1])
}

func TestTableJSON(t *testing.T) {
	out, err := run(t, "", "table", "--lang", "de", "--json")
	require.NoError(t, err)

	var entries []numerals.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, []string{"ein", "eins"}, entries[1].Forms)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "numerals "), out)
}
