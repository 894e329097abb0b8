package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godlist/config"
)

func newTestClient(preload ...string) (*godlistClient, *bytes.Buffer) {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	conf := config.Default()
	conf.Preload = preload
	var out bytes.Buffer
	return newClient(conf, &out, logger), &out
}

func run(t *testing.T, c *godlistClient, out *bytes.Buffer, script string) []string {
	t.Helper()
	out.Reset()
	require.NoError(t, repl(strings.NewReader(script), c, cliConfig{}))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestGodlistCli(t *testing.T) {
	c, out := newTestClient()
	lines := run(t, c, out, `
addlast 1
addlast 2
addfirst 0
range
removeat 1
range
indexof 2
contains 5
insert 1 9
range
count
`)
	assert.Equal(t, []string{
		"(integer) 1",
		"(integer) 2",
		"(integer) 3",
		`1) "0"`,
		`2) "1"`,
		`3) "2"`,
		"OK",
		`1) "0"`,
		`2) "2"`,
		"(integer) 1",
		"(integer) 0",
		"OK",
		`1) "0"`,
		`2) "9"`,
		`3) "2"`,
		"(integer) 3",
	}, lines)
}

func TestCommandErrors(t *testing.T) {
	c, out := newTestClient("a")
	lines := run(t, c, out, `
get 5
get x
insert 3 z
nosuch
get
copyto 0 0
add "unterminated
copyto 9223372036854775807 0
copyto -1 0
`)
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "(error) OUTOFRANGE"), lines[0])
	assert.Equal(t, "(error) ERR value is not an integer", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "(error) OUTOFRANGE"), lines[2])
	assert.Equal(t, "(error) ERR unknown command 'nosuch'", lines[3])
	assert.Equal(t, "(error) ERR wrong number of arguments for 'get' command", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "(error) INVALIDARG"), lines[5])
	assert.Equal(t, "(error) ERR unbalanced quotes in request", lines[6])
	assert.Equal(t, "(error) ERR size out of range", lines[7])
	assert.Equal(t, "(error) ERR size out of range", lines[8])
	assert.Equal(t, 1, c.list.Length())
}

func TestEndsAndCopy(t *testing.T) {
	c, out := newTestClient("a", "b", "c")
	lines := run(t, c, out, `
SET 1 "b b"
first
last
copyto 4 1
poplast
popfirst
removefirst
poplast
clear
count
`)
	assert.Equal(t, []string{
		"OK",
		`"a"`,
		`"c"`,
		`1) ""`,
		`2) "a"`,
		`3) "b b"`,
		`4) "c"`,
		`"c"`,
		`"a"`,
		"OK",
		"(nil)",
		"OK",
		"(integer) 0",
	}, lines)
}

func TestPrintAndQuit(t *testing.T) {
	c, out := newTestClient("x", "y")
	lines := run(t, c, out, "print\nquit\nadd never\n")
	assert.Equal(t, []string{"x", "y", "(integer) 2"}, lines)
	assert.False(t, c.list.Contains("never"))
}

func TestPrompt(t *testing.T) {
	c, out := newTestClient()
	require.NoError(t, repl(strings.NewReader("count\n"), c, cliConfig{prompt: "> ", interactive: true}))
	assert.Equal(t, "> (integer) 0\n> ", out.String())
}

func TestLookupCommand(t *testing.T) {
	assert.NotNil(t, lookupCommand("ADD"))
	assert.Equal(t, "removeat", lookupCommand("RemoveAt").name)
	assert.Nil(t, lookupCommand("lpush"))
	for _, cmd := range GodlistCommandTable {
		assert.NotNil(t, cmd.proc, cmd.name)
	}
}

func TestCopyToLargeSize(t *testing.T) {
	c, out := newTestClient("a")
	assert.NotPanics(t, func() {
		run(t, c, out, "copyto 9223372036854775807 0\n")
	})
	lines := run(t, c, out, "copyto 1048577 0\ncopyto 3 2\n")
	assert.Equal(t, []string{"(error) ERR size out of range", `1) ""`, `2) ""`, `3) "a"`}, lines)
}

func TestRespOutput(t *testing.T) {
	c, out := newTestClient("a")
	cli := cliConfig{resp: true}
	require.NoError(t, repl(strings.NewReader("add b\nrange\nget 9\nfirst\nclear\npoplast\n"), c, cli))
	assert.Equal(t, ":2\r\n"+
		"*2\r\n$1\r\na\r\n$1\r\nb\r\n"+
		"-OUTOFRANGE index out of range error: index 9, valid range [0, 2)\r\n"+
		"$1\r\na\r\n"+
		"+OK\r\n"+
		"$-1\r\n", out.String())
}

func TestRawCommand(t *testing.T) {
	c, out := newTestClient()
	lines := run(t, c, out, "raw set key val\n")
	assert.Equal(t, []string{`"*3\r\n$3\r\nset\r\n$3\r\nkey\r\n$3\r\nval\r\n"`}, lines)

	out.Reset()
	require.NoError(t, repl(strings.NewReader("raw add 1\n"), c, cliConfig{resp: true}))
	assert.Equal(t, "$20\r\n*2\r\n$3\r\nadd\r\n$1\r\n1\r\n\r\n", out.String())
	assert.Equal(t, 0, c.list.Length())
}

func TestErrorColour(t *testing.T) {
	c, out := newTestClient()
	require.NoError(t, repl(strings.NewReader("get 0\ncount\n"), c, cliConfig{interactive: true}))
	assert.Equal(t, colorRed+"(error) OUTOFRANGE index out of range error: index 0, valid range [0, 0)"+colorReset+"\n(integer) 0\n", out.String())

	out.Reset()
	require.NoError(t, repl(strings.NewReader("get 0\n"), c, cliConfig{}))
	assert.NotContains(t, out.String(), colorRed)
}
