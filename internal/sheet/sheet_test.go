package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generated = `.tag-div-1a2b3c4d {
  padding: 8px;
  border: 1px solid red;
}
.tag-div-1a2b3c4d:hover {
  color: blue;
}
@media screen and (min-width: 576px) {
  .tag-div-1a2b3c4d {
    padding: 16px;
  }
  .tag-div-1a2b3c4d::placeholder {
    opacity: 0.5;
  }
}
@media screen and (min-width: 768px) {
  .tag-div-1a2b3c4d {
    padding: 32px;
  }
}
`

func TestParse(t *testing.T) {
	s, err := Parse(generated)
	require.NoError(t, err)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 6, s.Declarations())
	assert.Equal(t, []string{
		".tag-div-1a2b3c4d",
		".tag-div-1a2b3c4d:hover",
		".tag-div-1a2b3c4d::placeholder",
	}, s.Selectors())

	media := s.MediaQueries()
	require.Len(t, media, 2)
	assert.True(t, strings.HasPrefix(media[0], "screen and (min-width"))
	assert.Contains(t, media[0], "576px")

	v, ok := s.Get(".tag-div-1a2b3c4d", "", "border")
	require.True(t, ok)
	assert.Equal(t, "1px solid red", v)

	v, ok = s.Get(".tag-div-1a2b3c4d", media[1], "padding")
	require.True(t, ok)
	assert.Equal(t, "32px", v)

	_, ok = s.Get(".tag-div-1a2b3c4d", "", "margin")
	assert.False(t, ok)
}

func TestParseCustomProperty(t *testing.T) {
	s, err := Parse(".x { --brand: #07c; color: var(--brand); }")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Len(t, s.Rules[0].Declarations, 2)
	assert.Equal(t, "--brand", s.Rules[0].Declarations[0].Property)
	assert.Equal(t, "color", s.Rules[0].Declarations[1].Property)
}

func TestParseErrors(t *testing.T) {
	s, err := Parse(".x { color: red; }\nselector")
	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "rules before the error are kept")
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse("")
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.MediaQueries())
}

func TestRuleString(t *testing.T) {
	r := Rule{Selector: ".a", Declarations: []Declaration{{"color", "red"}, {"margin", "0"}}}
	assert.Equal(t, ".a { color: red; margin: 0; }", r.String())
	assert.Equal(t, ".a {}", Rule{Selector: ".a"}.String())

	long := Rule{Selector: ".a", Declarations: []Declaration{{"content", strings.Repeat("x", 200)}}}
	assert.Len(t, long.String(), 120)
	assert.True(t, strings.HasSuffix(long.String(), "..."))
}
