package sounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allSymbols = "aAiIuUfFxXeEoOMHkKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"

// reference lists each class by hand, independent of the sutra table.
var reference = map[string]string{
	"ac":  "aAiIuUfFxXeEoO",
	"hal": "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh",
	"Jal": "kKgGcCjJwWqQtTdDpPbBSzsh",
	"yaR": "yvrl",
	"ik":  "iIuUfFxX",
	"iR":  "iIuUfFxXeEoOhyvrl",
	"yaY": "yvrlYmNRnJB",
	"Sal": "Szsh",
	"JaS": "JBGQDjbgqd",
	"Kar": "KPCWTcwtkpSzs",
	"val": "vrlYmNRnJBGQDjbgqdKPCWTcwtkpSzsh",
	"ku":  "kKgGN",
	"i":   "iI",
	"a":   "aA",
	"K":   "K",
}

func TestClassesMatchReferenceTable(t *testing.T) {
	for expr, members := range reference {
		t.Run(expr, func(t *testing.T) {
			set := S(expr)
			for i := 0; i < len(allSymbols); i++ {
				c := allSymbols[i]
				want := containsByte(members, c)
				assert.Equal(t, want, set.Contains(c), "symbol %q in %q", string(c), expr)
			}
			assert.Equal(t, len(members), set.Len())
		})
	}
}

func TestUnionIsCommutativeAndIdempotent(t *testing.T) {
	a := S("ac")
	b := S("K G C J W Q T D P B")

	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, S("ac K G C J W Q T D P B"), a.Union(b))
	assert.Equal(t, S("i u"), S("i").Union(S("u")))
}

func TestUnionDoesNotMutateOperands(t *testing.T) {
	a := S("i")
	_ = a.Union(S("u"))
	assert.False(t, a.Contains('u'))
}

func TestZeroSetIsEmpty(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains('a'))
	assert.Equal(t, "", s.String())
}

func TestContainsRune(t *testing.T) {
	ac := S("ac")
	assert.True(t, ac.ContainsRune('a'))
	assert.False(t, ac.ContainsRune('ā'))
	assert.False(t, ac.ContainsRune(-1))
}

func TestParseRejectsUnknownClass(t *testing.T) {
	_, err := Parse("ac qq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qq")

	assert.Panics(t, func() { S("xyz") })
	assert.Panics(t, func() { S("hil") })
}

func TestGunaAndVrddhi(t *testing.T) {
	tests := []struct {
		in     byte
		guna   string
		vrddhi string
	}{
		{'i', "e", "E"},
		{'U', "o", "O"},
		{'f', "a", "A"},
	}
	for _, tt := range tests {
		g, ok := Guna(tt.in)
		require.True(t, ok)
		assert.Equal(t, tt.guna, g)
		v, ok := Vrddhi(tt.in)
		require.True(t, ok)
		assert.Equal(t, tt.vrddhi, v)
	}

	_, ok := Guna('a')
	assert.False(t, ok)
	r, ok := Raparah('f')
	require.True(t, ok)
	assert.Equal(t, "r", r)
}

func TestSavarna(t *testing.T) {
	assert.True(t, Savarna('a', 'A'))
	assert.True(t, Savarna('f', 'x'))
	assert.False(t, Savarna('a', 'i'))
	assert.False(t, Savarna('e', 'e'))
}

func TestConsonantRows(t *testing.T) {
	c, ok := Kuhoscu('h')
	require.True(t, ok)
	assert.Equal(t, byte('j'), c)

	c, ok = Alpaprana('B')
	require.True(t, ok)
	assert.Equal(t, byte('b'), c)

	c, ok = Chartva('d')
	require.True(t, ok)
	assert.Equal(t, byte('t'), c)

	c, ok = Retroflex('T')
	require.True(t, ok)
	assert.Equal(t, byte('W'), c)

	c, ok = NasalOf('t')
	require.True(t, ok)
	assert.Equal(t, byte('n'), c)
}

func TestLastVowelIndex(t *testing.T) {
	assert.Equal(t, 1, LastVowelIndex("vid"))
	assert.Equal(t, 2, LastVowelIndex("AtAm"))
	assert.Equal(t, -1, LastVowelIndex("t"))
	assert.Equal(t, 2, CountVowels("AtAm"))
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}
