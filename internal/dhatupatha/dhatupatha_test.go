package dhatupatha

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 12, lex.Len())

	kr := lex.ByCode("08.0010")
	require.Len(t, kr, 1)
	assert.Equal(t, "qukf\\Y", kr[0].Upadesha)
	assert.Equal(t, 8, kr[0].Gana)
	assert.Equal(t, 10, kr[0].Number)

	assert.Empty(t, lex.ByCode("99.0001"))
}

func TestDefault_Memoized(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestLoadTSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr string
	}{
		{"valid", "code\tdhatu\tartha\n01.0001\tBU\tsattAyAm\n\n02.0001\ta\\da~\tBakzaRe\r\n", 2, ""},
		{"header only", "code\tdhatu\tartha\n", 0, ""},
		{"empty", "", 0, "empty input"},
		{"bad header", "code\tdhatu\n01.0001\tBU\n", 0, "header"},
		{"missing field", "code\tdhatu\tartha\n01.0001\tBU\n", 0, "line 2"},
		{"bad code", "code\tdhatu\tartha\n1\tBU\tx\n", 0, "dhatu code"},
		{"empty root", "code\tdhatu\tartha\n01.0001\t\tx\n", 0, "empty upadesha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := LoadTSV(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, lex.Len())
		})
	}
}

func TestLoadCUE(t *testing.T) {
	lex, err := LoadCUE("testdata/cue")
	require.NoError(t, err)

	all := lex.All()
	require.Len(t, all, 2)
	assert.Equal(t, Dhatu{Code: "01.0001", Upadesha: "BU", Gana: 1, Number: 1}, all[0])
	assert.Equal(t, Dhatu{Code: "08.0010", Upadesha: "qukf\\Y", Artha: "karaRe", Gana: 8, Number: 10}, all[1])
}

func TestLoadCUE_Errors(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		code string
	}{
		{"missing dir", "testdata/nope", ErrCodeNotFound},
		{"no files", t.TempDir(), ErrCodeNoFiles},
		{"schema violation", "testdata/badcue", ErrCodeSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCUE(tt.dir)
			require.Error(t, err)
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.code, le.Code)
		})
	}
}

func TestLoad(t *testing.T) {
	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, def.Len())

	path := filepath.Join(t.TempDir(), "roots.tsv")
	require.NoError(t, os.WriteFile(path, []byte("code\tdhatu\tartha\n01.0001\tBU\tsattAyAm\n"), 0o644))
	lex, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, lex.Len())

	lex, err = Load("testdata/cue")
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}
