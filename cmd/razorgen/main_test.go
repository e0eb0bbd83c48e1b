package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/razorgen"
	main "github.com/fwojciec/razorgen/cmd/razorgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<!DOCTYPE html>
<html>
<body>
    <header data-pgc-define="site-header">
        <a data-pgc-edit="Home[href]" href="/">Home</a>
    </header>
    <p>Contact: hi@example.com</p>
</body>
</html>
`

// newProject writes a Pinegrow project into a fresh directory and returns it.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"site/pinegrow.json":        "{}",
		"site/index.html":           indexPage,
		"site/about/OurTeam.html":   "<html><body><h1>Team</h1></body></html>",
		"site/partials/footer.html": "<footer>Bye</footer>",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	m := &main.Main{Dir: dir}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMain_Generate(t *testing.T) {
	t.Parallel()

	t.Run("writes pages and components", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)

		stdout, _, err := run(t, dir)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Generated 3 templates from 3 documents in 1 projects (0 skipped)")

		want := `@layout EmptyLayout
@page "/index"

<SiteHeader></SiteHeader>
<p>Contact: hi@@example.com</p>

@code {

}
`
		assert.Equal(t, want, readFile(t, filepath.Join(dir, "Pages", "Index.razor")))
		assert.Contains(t, readFile(t, filepath.Join(dir, "Pages", "about", "OurTeam.razor")), `@page "/about/our-team"`)

		header := readFile(t, filepath.Join(dir, "Components", "SiteHeader.razor"))
		assert.Contains(t, header, `href="@Home"`)
		assert.Contains(t, header, "public string Home { get; set; }")

		_, err = os.Stat(filepath.Join(dir, "Components", "partials", "Footer.razor"))
		assert.True(t, os.IsNotExist(err), "partials are skipped by default")
	})

	t.Run("dangling symlink is skipped", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		require.NoError(t, os.Symlink(filepath.Join(dir, "site", "gone.html"), filepath.Join(dir, "site", "broken.html")))

		stdout, stderr, err := run(t, dir)

		require.NoError(t, err)
		assert.Contains(t, stdout, "(1 skipped)")
		assert.Contains(t, stderr, "skipping unreadable file")
		assert.FileExists(t, filepath.Join(dir, "Pages", "Index.razor"))
	})

	t.Run("flags override configuration", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "razorgen.yaml"), []byte("pageDirectory: Views\n"), 0644))

		_, _, err := run(t, dir, "--partials", "--no-layout", "--component-dir", "Shared", "--out", "web", "site")

		require.NoError(t, err)
		page := readFile(t, filepath.Join(dir, "web", "Views", "Index.razor"))
		assert.NotContains(t, page, "@layout")
		assert.Equal(t, "<footer>Bye</footer>\n\n@code {\n\n}\n",
			readFile(t, filepath.Join(dir, "web", "Shared", "partials", "Footer.razor")))
		assert.FileExists(t, filepath.Join(dir, "web", "Shared", "SiteHeader.razor"))
	})

	t.Run("dry run lists paths without writing", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)

		stdout, _, err := run(t, dir, "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, stdout, filepath.Join("Pages", "Index.razor"))
		assert.Contains(t, stdout, filepath.Join("Components", "SiteHeader.razor"))
		assert.Contains(t, stdout, "Would generate 3 templates")
		assert.NoDirExists(t, filepath.Join(dir, "Pages"))
	})

	t.Run("verbose logs slots", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)

		_, stderr, err := run(t, dir, "-v", "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, stderr, "bound slot")
		assert.Contains(t, stderr, "parameter=Home")
	})

	t.Run("missing explicit config fails", func(t *testing.T) {
		t.Parallel()

		dir := newProject(t)

		_, stderr, err := run(t, dir, "--config", "nope.yaml")

		require.Error(t, err)
		assert.Equal(t, razorgen.ENOTFOUND, razorgen.ErrorCode(err))
		assert.Contains(t, stderr, "error:")
	})

	t.Run("missing root fails without writing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, stderr, err := run(t, dir, "missing")

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
		assert.NoDirExists(t, filepath.Join(dir, "Pages"))
	})
}

func TestMain_Init(t *testing.T) {
	t.Parallel()

	t.Run("writes default configuration", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		stdout, _, err := run(t, dir, "init")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Wrote razorgen.yaml")
		assert.Contains(t, readFile(t, filepath.Join(dir, "razorgen.yaml")), "pageDirectory: Pages")
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "razorgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout: Main\n"), 0644))

		_, _, err := run(t, dir, "init")
		require.Error(t, err)
		assert.Equal(t, "layout: Main\n", readFile(t, path))

		_, _, err = run(t, dir, "init", "--force")
		require.NoError(t, err)
		assert.Contains(t, readFile(t, path), "layout: EmptyLayout")
	})
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, t.TempDir(), "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "razorgen")
	assert.Contains(t, stdout, "init")
}
