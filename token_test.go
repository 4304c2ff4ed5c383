package nodeopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Scan(nil))
		assert.Empty(t, Scan([]string{}))
	})
	t.Run("bare option", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"--inspect"})
		require.Len(t, tokens, 1)
		assert.Equal(t, Token{Kind: KindOption, Name: "inspect", Raw: "--inspect"}, tokens[0])
	})
	t.Run("inline value", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"--inspect=127.0.0.1:9229"})
		require.Len(t, tokens, 1)
		assert.Equal(t, Token{
			Kind:     KindOption,
			Name:     "inspect",
			Value:    "127.0.0.1:9229",
			HasValue: true,
			Raw:      "--inspect=127.0.0.1:9229",
		}, tokens[0])
	})
	t.Run("empty inline value is still a value", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"--require="})
		require.Len(t, tokens, 1)
		assert.True(t, tokens[0].HasValue)
		assert.Equal(t, "", tokens[0].Value)
	})
	t.Run("single dash prefix", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"-r"})
		require.Len(t, tokens, 1)
		assert.Equal(t, KindOption, tokens[0].Kind)
		assert.Equal(t, "r", tokens[0].Name)
	})
	t.Run("positional", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"9230"})
		require.Len(t, tokens, 1)
		assert.Equal(t, Token{Kind: KindPositional, Value: "9230", Raw: "9230"}, tokens[0])
	})
	t.Run("standalone dash is positional", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"-"})
		require.Len(t, tokens, 1)
		assert.Equal(t, KindPositional, tokens[0].Kind)
	})
	t.Run("empty string is an empty positional", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{""})
		require.Len(t, tokens, 1)
		assert.Equal(t, KindPositional, tokens[0].Kind)
		assert.Equal(t, "", tokens[0].Value)
	})
	t.Run("terminator makes everything after it positional", func(t *testing.T) {
		t.Parallel()
		tokens := Scan([]string{"--inspect", "--", "--max-old-space-size=4096", "arg"})
		require.Len(t, tokens, 4)
		assert.Equal(t, KindOption, tokens[0].Kind)
		assert.Equal(t, KindTerminator, tokens[1].Kind)
		assert.Equal(t, KindPositional, tokens[2].Kind)
		assert.Equal(t, "--max-old-space-size=4096", tokens[2].Value)
		assert.Equal(t, KindPositional, tokens[3].Kind)
	})
}
