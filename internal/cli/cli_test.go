// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/evroute/internal/cli"
)

const scenarioA = "3\nA.0\nB.0\nC.1\n1:5\n2:3\n\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ------------------------------------------------------------------------
// Configuration
// ------------------------------------------------------------------------

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := cli.ParseArgs([]string{"network.txt"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "network.txt", cfg.Graph)
	require.Nil(t, cfg.Source)
	require.Nil(t, cfg.DisplayAll)
	require.Equal(t, cli.FormatText, cfg.Format)
	require.Equal(t, cli.ColorAuto, cfg.Color)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestParseArgs_FileThenFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "evroute.yaml", strings.Join([]string{
		"graph: from-file.txt",
		"source: 2",
		"display_all: true",
		"format: json",
		"max_nodes: 10",
		"log:",
		"  level: debug",
		"  format: json",
		"",
	}, "\n"))

	cfg, err := cli.ParseArgs([]string{"-config", cfgPath}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "from-file.txt", cfg.Graph)
	require.NotNil(t, cfg.Source)
	require.Equal(t, 2, *cfg.Source)
	require.NotNil(t, cfg.DisplayAll)
	require.True(t, *cfg.DisplayAll)
	require.Equal(t, cli.FormatJSON, cfg.Format)
	require.Equal(t, 10, cfg.MaxNodes)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, cli.LogFormatJSON, cfg.Log.Format)
	require.Equal(t, cli.ColorAuto, cfg.Color, "keys absent from the file keep defaults")

	cfg, err = cli.ParseArgs([]string{"-config", cfgPath, "-source", "0", "-all=false", "-format", "text", "-graph", "flag.txt"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "flag.txt", cfg.Graph)
	require.Equal(t, 0, *cfg.Source)
	require.False(t, *cfg.DisplayAll)
	require.Equal(t, cli.FormatText, cfg.Format)

	cfg, err = cli.ParseArgs([]string{"-config", cfgPath, "-source", "-1"}, io.Discard)
	require.NoError(t, err)
	require.Nil(t, cfg.Source, "-source -1 re-enables the prompt")
}

func TestParseArgs_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := writeFile(t, dir, "unknown.yaml", "graph: g.txt\nsurprise: 1\n")
	broken := writeFile(t, dir, "broken.yaml", "graph: [unclosed\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no graph", nil},
		{"bad format", []string{"-format", "xml", "g.txt"}},
		{"bad color", []string{"-color", "rainbow", "g.txt"}},
		{"bad log format", []string{"-log-format", "xml", "g.txt"}},
		{"negative max nodes", []string{"-max-nodes", "-1", "g.txt"}},
		{"disabled log level", []string{"-log-level", "disabled", "g.txt"}},
		{"trace log level", []string{"-log-level", "trace", "g.txt"}},
		{"empty log level", []string{"-log-level", "", "g.txt"}},
		{"unknown flag", []string{"-nope", "g.txt"}},
		{"too many args", []string{"a.txt", "b.txt"}},
		{"missing config file", []string{"-config", filepath.Join(dir, "missing.yaml"), "g.txt"}},
		{"unknown config key", []string{"-config", unknown}},
		{"broken yaml", []string{"-config", broken}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.ParseArgs(tc.args, io.Discard)
			require.ErrorIs(t, err, cli.ErrConfig)
		})
	}
}

func TestParseArgs_NegativeConfigSourceAsks(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "evroute.yaml", "graph: g.txt\nsource: -1\n")

	cfg, err := cli.ParseArgs([]string{"-config", cfgPath}, io.Discard)
	require.NoError(t, err)
	require.Nil(t, cfg.Source)

	cfg, err = cli.ParseArgs([]string{"-config", cfgPath, "-source", "2"}, io.Discard)
	require.NoError(t, err)
	require.NotNil(t, cfg.Source)
	require.Equal(t, 2, *cfg.Source)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := cli.NewLogger(&buf, cli.LogConfig{Level: "info", Format: cli.LogFormatJSON}, false)
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	log.Info().Int("nodes", 3).Msg("graph loaded")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	require.Equal(t, "graph loaded", ev["message"])
	require.Equal(t, "evroute", ev["component"])
	require.EqualValues(t, 3, ev["nodes"])

	_, err = cli.NewLogger(&buf, cli.LogConfig{Level: "loud"}, false)
	require.ErrorIs(t, err, cli.ErrConfig)
}

// ------------------------------------------------------------------------
// Prompt
// ------------------------------------------------------------------------

func TestPrompter_ReasksUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := cli.NewPrompter(strings.NewReader("abc\n-1\n3\n 2 \nmaybe\nYES\n"), &out, true, zerolog.Nop())

	idx, err := p.AskSource(3)
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	yes, err := p.AskYesNo("Display all nodes?")
	require.NoError(t, err)
	require.True(t, yes)

	text := out.String()
	require.Equal(t, 4, strings.Count(text, "Enter the starting node index [0-2]: "))
	require.Equal(t, 4, strings.Count(text, "Invalid answer"))
	require.Contains(t, text, `Invalid answer "maybe": please answer y or n.`)
}

func TestPrompter_NonInteractiveIsSilent(t *testing.T) {
	var out bytes.Buffer
	p := cli.NewPrompter(strings.NewReader("x\n1\nn\n"), &out, false, zerolog.Nop())

	idx, err := p.AskSource(2)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	all, err := p.AskYesNo("Display all nodes?")
	require.NoError(t, err)
	require.False(t, all)
	require.Empty(t, out.String())
}

func TestPrompter_EOF(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("nope\n"), io.Discard, false, zerolog.Nop())
	_, err := p.AskSource(2)
	require.ErrorIs(t, err, cli.ErrNoInput)

	_, err = p.AskYesNo("again?")
	require.ErrorIs(t, err, cli.ErrNoInput)
}

// ------------------------------------------------------------------------
// Run
// ------------------------------------------------------------------------

type RunSuite struct {
	suite.Suite
	dir    string
	graph  string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (s *RunSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.graph = writeFile(s.T(), s.dir, "network.txt", scenarioA)
	s.stdout.Reset()
	s.stderr.Reset()
}

func (s *RunSuite) run(stdin string, args ...string) int {
	return cli.Run(args, strings.NewReader(stdin), &s.stdout, &s.stderr)
}

func (s *RunSuite) TestPromptedText() {
	code := s.run("0\nn\n", "-color", "never", s.graph)
	s.Require().Equal(cli.ExitOK, code, s.stderr.String())
	s.Require().Equal(strings.Join([]string{
		"Shortest paths from A (node 0):",
		"  C [station] 8: A -> B -> C",
		"Nearest charging station: C (node 2) at distance 8 via A -> B -> C",
		"",
	}, "\n"), s.stdout.String())
}

func (s *RunSuite) TestFlagsSkipPrompt() {
	code := s.run("", "-source", "1", "-all", "-format", "json", s.graph)
	s.Require().Equal(cli.ExitOK, code, s.stderr.String())

	var got struct {
		Source  int `json:"source"`
		Records []struct {
			Label string `json:"label"`
		} `json:"records"`
		Nearest *struct {
			Distance float64 `json:"distance"`
		} `json:"nearest"`
	}
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &got))
	s.Require().Equal(1, got.Source)
	s.Require().Len(got.Records, 3)
	s.Require().NotNil(got.Nearest)
	s.Require().Equal(3.0, got.Nearest.Distance)
}

func (s *RunSuite) TestMalformedGraph() {
	bad := writeFile(s.T(), s.dir, "bad.txt", "abc\n")
	code := s.run("0\nn\n", bad)
	s.Require().Equal(cli.ExitLoadError, code)
	s.Require().Empty(s.stdout.String(), "no partial results")
	s.Require().Contains(s.stderr.String(), "malformed count line")
}

func (s *RunSuite) TestLoadDiagnosticAtErrorLevel() {
	bad := writeFile(s.T(), s.dir, "bad.txt", "abc\n")
	code := s.run("", "-log-level", "error", "-log-format", "json", bad)
	s.Require().Equal(cli.ExitLoadError, code)
	s.Require().Contains(s.stderr.String(), `evroute: loader: line 1: malformed count line "abc"`)
	s.Require().Contains(s.stderr.String(), `"kind":"malformed count line"`)
}

func (s *RunSuite) TestDisabledLogLevelRejected() {
	bad := writeFile(s.T(), s.dir, "bad.txt", "abc\n")
	s.Require().Equal(cli.ExitUsage, s.run("", "-log-level", "disabled", bad))
	s.Require().Contains(s.stderr.String(), "log level")
}

func (s *RunSuite) TestConfigSourceMinusOnePrompts() {
	cfgPath := writeFile(s.T(), s.dir, "evroute.yaml", "source: -1\n")
	code := s.run("0\nn\n", "-config", cfgPath, "-color", "never", s.graph)
	s.Require().Equal(cli.ExitOK, code, s.stderr.String())
	s.Require().Contains(s.stdout.String(), "Nearest charging station: C (node 2) at distance 8 via A -> B -> C")
}

func (s *RunSuite) TestMissingGraphFile() {
	code := s.run("", filepath.Join(s.dir, "missing.txt"))
	s.Require().Equal(cli.ExitLoadError, code)
	s.Require().Contains(s.stderr.String(), "unreadable source")
}

func (s *RunSuite) TestSourceOutOfRange() {
	code := s.run("", "-source", "3", "-all", s.graph)
	s.Require().Equal(cli.ExitUsage, code)
	s.Require().Empty(s.stdout.String())
}

func (s *RunSuite) TestEmptyGraph() {
	empty := writeFile(s.T(), s.dir, "empty.txt", "0\n")
	s.Require().Equal(cli.ExitUsage, s.run("", empty))
}

func (s *RunSuite) TestPromptRunsDry() {
	s.Require().Equal(cli.ExitNoInput, s.run("", s.graph))
	s.Require().Equal(cli.ExitNoInput, s.run("0\n", s.graph))
}

func (s *RunSuite) TestUsageAndHelp() {
	s.Require().Equal(cli.ExitUsage, s.run(""))
	s.Require().Equal(cli.ExitOK, s.run("", "-h"))
	s.Require().Contains(s.stderr.String(), "Usage: evroute")
}

func (s *RunSuite) TestDebugLogsSettledNodes() {
	code := s.run("", "-source", "0", "-all=false", "-log-level", "debug", "-log-format", "json", s.graph)
	s.Require().Equal(cli.ExitOK, code, s.stderr.String())
	s.Require().Equal(3, strings.Count(s.stderr.String(), `"message":"settled"`))
	s.Require().Contains(s.stderr.String(), `"message":"graph loaded"`)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}
