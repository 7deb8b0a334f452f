package about

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render("# Title\n\nSome text.\n\n- one\n- two\n", 0)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	lines := strings.Split(plain, "\n")
	assert.Equal(t, []string{"Title", "Some text.", "• one", "• two"}, lines)
}

func TestRender_ThematicBreak(t *testing.T) {
	out, err := Render("a\n\n---\n\nb\n", 5)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "─────")
}

func TestRender_BuiltinPages(t *testing.T) {
	for _, page := range []string{AppMarkdown, ToolkitMarkdown} {
		out, err := Render(page, 40)
		require.NoError(t, err)
		assert.NotEmpty(t, ansi.Strip(out))
	}
}
