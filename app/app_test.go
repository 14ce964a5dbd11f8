package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookmarkFile = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
<DT><A HREF="https://go.dev">Go</A>
<DT><A HREF="https://pkg.go.dev">Packages</A>
</DL><p>`

// run executes the root command with args against a fresh config directory.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		exportFormat, exportOut, resetYes, dumpJSON = formatJSON, "", false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()

	return out.String(), err
}

func configDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	main := fmt.Sprintf(`[Webserver]
URL = "http://localhost"

[DB]
Path = %q

[Log.Console]
Enabled = false
`, filepath.Join(dir, "newtab.db"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(main), 0o600))

	return dir
}

func TestImportHTMLThenExport(t *testing.T) {
	dir := configDir(t)
	file := filepath.Join(dir, "bookmarks.html")
	require.NoError(t, os.WriteFile(file, []byte(bookmarkFile), 0o600))

	out, err := run(t, dir, "import-html", file)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 bookmarks")

	out, err = run(t, dir, "export")
	require.NoError(t, err)

	var doc struct {
		Bookmarks []struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"bookmarks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Bookmarks, 2)
	assert.Equal(t, "Go", doc.Bookmarks[0].Name)
}

func TestExportYAMLToFile(t *testing.T) {
	dir := configDir(t)
	target := filepath.Join(dir, "export.yaml")

	_, err := run(t, dir, "export", "--format", "yaml", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exportDate:")
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := run(t, configDir(t), "export", "--format", "xml")
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	dir := configDir(t)
	file := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"settings":{"theme":"dark"}}`), 0o600))

	out, err := run(t, dir, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Settings imported successfully!")

	require.NoError(t, os.WriteFile(file, []byte(`not json`), 0o600))
	_, err = run(t, dir, "import", file)
	require.Error(t, err)
}

func TestReset(t *testing.T) {
	dir := configDir(t)

	_, err := run(t, dir, "reset")
	require.ErrorIs(t, err, ErrResetNotConfirmed)

	out, err := run(t, dir, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings reset to defaults!")
}

func TestConfigDumpAndSchema(t *testing.T) {
	dir := configDir(t)

	out, err := run(t, dir, "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "[Webserver]")

	out, err = run(t, dir, "config", "dump", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Webserver"`)

	out, err = run(t, dir, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"exportDate"`)
}

func TestKeys(t *testing.T) {
	dir := configDir(t)

	out, err := run(t, dir, "keys")
	require.NoError(t, err)
	assert.Empty(t, out)

	file := filepath.Join(dir, "bookmarks.html")
	require.NoError(t, os.WriteFile(file, []byte(bookmarkFile), 0o600))
	_, err = run(t, dir, "import-html", file)
	require.NoError(t, err)

	out, err = run(t, dir, "keys")
	require.NoError(t, err)
	assert.Equal(t, "newTabBookmarks\n", out)
}

func TestWritingCommandsAskToStopTheServer(t *testing.T) {
	for _, cmd := range []*cobra.Command{importCmd, importHTMLCmd, resetCmd} {
		assert.Contains(t, cmd.Long, "Stop the server first", cmd.Name())
	}
}
