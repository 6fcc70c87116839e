package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"patterns.md":        {Data: []byte("# Patterns\n\nTwo or three segments")},
		"option-dry-run.txt": {Data: []byte("Print the build command without running it")},
		"notes.json":         {Data: []byte("{}")},
		"nested/branches.md": {Data: []byte("# Branches")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"branches", "option-dry-run", "patterns"}, tm.ListTopics())

		topic, ok := tm.GetTopic("patterns")
		require.True(t, ok)
		assert.Equal(t, "# Patterns\n\nTwo or three segments", topic.Content)

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil_fs", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"dry-run", "--dry-run", "-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}
	return strings.ToUpper(content)
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "garnix", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "run", Short: "Run builds", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, InitializeWithOptions(root, testFS(), Options{Renderer: upperRenderer{}}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("renders_topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "patterns"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# PATTERNS\n\nTWO OR THREE SEGMENTS", out.String())
	})

	t.Run("plain_topic_is_not_rendered", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "dry-run"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Print the build command without running it", out.String())
	})

	t.Run("lists_topics", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  patterns")
		assert.Contains(t, out.String(), "  --dry-run")
		assert.Contains(t, out.String(), "garnix help <topic>")
	})

	t.Run("falls_back_to_command_help", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "run"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Run builds")
	})
}
