package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truepath/advocates-site/internal/content"
	"github.com/truepath/advocates-site/internal/domain"
	"github.com/truepath/advocates-site/internal/view"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSite_WritesFiles(t *testing.T) {
	dir := t.TempDir()

	files, err := Site(context.Background(), content.New(content.DefaultOptions()), Config{
		Dir:        dir,
		ThanksPath: "/thanks",
		Page:       view.PageOptions{Year: 2026},
		Logger:     quietLogger(),
	})
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
		assert.Positive(t, f.Bytes, f.Path)
	}

	assert.ElementsMatch(t, []string{
		"index.html",
		"thanks/index.html",
		"404.html",
		"static/site.js",
		"static/favicon.svg",
	}, paths)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `id="donate"`)
	assert.Contains(t, string(index), "© 2026 TruePath Advocates")

	thanks, err := os.ReadFile(filepath.Join(dir, "thanks", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(thanks), `href="/#contact"`)
}

func TestSite_CustomPaths(t *testing.T) {
	dir := t.TempDir()

	_, err := Site(context.Background(), content.New(content.DefaultOptions()), Config{
		Dir:        dir,
		ThanksPath: "/merci/",
		Page:       view.PageOptions{StaticPrefix: "/assets/"},
		Logger:     quietLogger(),
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "merci", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "assets", "site.js"))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `src="/assets/site.js"`)
}

func TestSite_Errors(t *testing.T) {
	site := content.New(content.DefaultOptions())

	t.Run("missing dir", func(t *testing.T) {
		_, err := Site(context.Background(), site, Config{})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Site(ctx, site, Config{Dir: t.TempDir(), Logger: quietLogger()})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("output is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "taken")
		require.NoError(t, os.WriteFile(file, nil, 0o600))

		_, err := Site(context.Background(), site, Config{Dir: file, Logger: quietLogger()})
		assert.Error(t, err)
	})
}
