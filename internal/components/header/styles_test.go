package header_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haryokuncoro/portfolio-website/internal/components/header"
)

// mediaBlock returns the body of the @media rule with the given query, with
// runs of whitespace collapsed to single spaces.
func mediaBlock(t *testing.T, css, query string) string {
	t.Helper()

	start := strings.Index(css, "@media "+query)
	require.GreaterOrEqual(t, start, 0, "missing @media %s", query)

	open := strings.Index(css[start:], "{")
	require.GreaterOrEqual(t, open, 0)
	open += start

	depth := 0
	for i := open; i < len(css); i++ {
		switch css[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.Join(strings.Fields(css[open+1:i]), " ")
			}
		}
	}
	t.Fatalf("unterminated @media %s", query)
	return ""
}

func TestStylesheet_NarrowRegime(t *testing.T) {
	css := string(header.Stylesheet())
	block := mediaBlock(t, css, fmt.Sprintf("(max-width: %dpx)", header.Breakpoint))

	assert.Contains(t, block, ".nav-toggle { display: inline-flex; }")
	assert.Contains(t, block, ".main-nav.open { transform: scaleY(1); }")
	assert.Contains(t, block, ".main-nav ul { flex-direction: column;")
	assert.Contains(t, block, "top: 56px;")
	assert.Contains(t, block, "transform-origin: top; transform: scaleY(0); transition: transform 180ms ease;")
}

func TestStylesheet_WideRegimeIgnoresOpenState(t *testing.T) {
	css := string(header.Stylesheet())
	block := mediaBlock(t, css, fmt.Sprintf("(min-width: %dpx)", header.Breakpoint+1))

	assert.Contains(t, block, ".nav-toggle { display: none; }")
	assert.Contains(t, block, ".main-nav { position: static; transform: none; }")
	assert.NotContains(t, block, ".open", "the open marker must not style the wide layout")
}

func TestStylesheet_BaseRules(t *testing.T) {
	css := strings.Join(strings.Fields(string(header.Stylesheet())), " ")

	assert.Contains(t, css, "position: sticky;")
	assert.Contains(t, css, "transition: background-color 120ms ease, color 120ms ease;")
}

func TestStylesheetLink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, header.StylesheetLink("/static/header.css").Render(context.Background(), &buf))

	assert.Equal(t, `<link rel="stylesheet" href="/static/header.css">`, buf.String())
}
