package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_Text(t *testing.T) {
	stdout, _, code := execute(t, "explain", "--code", "01.0001", "--pada", "Bavati")
	require.Equal(t, ExitSuccess, code)

	assert.Contains(t, stdout, "BU 01.0001 law kartari prathama eka\n")
	assert.Contains(t, stdout, "1.3.1      | ")
	assert.Contains(t, stdout, "3.1.68     | ")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	forms := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(forms, "Bavati, BavataH, Bavanti, "), forms)
	assert.Contains(t, forms, "baBUva")
}

func TestExplain_JSON(t *testing.T) {
	stdout, _, code := execute(t, "explain", "--code", "08.0010", "--pada", "cakara", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var result ExplainResult
	resp := decodeData(t, stdout, &result)
	assert.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, result.Matches)
	for _, m := range result.Matches {
		assert.Equal(t, "cakara", m.Surface)
		assert.Equal(t, "liw", m.Request.La)
	}
	assert.Contains(t, result.Forms, "cakAra")
	assert.Contains(t, result.Forms, "karoti")
}

func TestExplain_NoMatchStillListsForms(t *testing.T) {
	stdout, _, code := execute(t, "explain", "--code", "01.0001", "--pada", "gacCati")
	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, "Bavati, "), stdout)
}

func TestExplain_UnknownCode(t *testing.T) {
	_, stderr, code := execute(t, "explain", "--code", "01.9999", "--pada", "Bavati")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "no root with code 01.9999")
}

func TestExplain_LexiconFlag(t *testing.T) {
	stdout, _, code := execute(t, "explain", "--code", "01.0001", "--pada", "Bavati",
		"--lexicon", "../dhatupatha/testdata/cue")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Bavati")

	_, stderr, code := execute(t, "explain", "--code", "01.0001", "--pada", "Bavati", "--lexicon", "testdata/missing.tsv")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "failed to load lexicon")
}
