// Package export renders the site to static files for hosting without the
// server.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/truepath/advocates-site/internal/app"
	"github.com/truepath/advocates-site/internal/domain"
	"github.com/truepath/advocates-site/internal/view"
)

// DefaultConcurrency bounds concurrent file writes.
const DefaultConcurrency = 4

// Config configures Site.
type Config struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	// ThanksPath is the URL path of the thank-you page, e.g. "/thanks".
	ThanksPath string

	Page        view.PageOptions
	Concurrency int
	Logger      *slog.Logger
}

// File is one file written by Site, relative to the output dir.
type File struct {
	Path  string
	Bytes int
}

type exportItem struct {
	name   string
	render func() ([]byte, error)
}

// Site renders the site to static files suitable for any file host:
// index.html, the thank-you page as <path>/index.html, 404.html and the
// embedded assets under the static prefix.
func Site(ctx context.Context, site *domain.Site, cfg Config) ([]File, error) {
	if cfg.Dir == "" {
		return nil, domain.NewValidationError("dir", "output directory is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	thanks := strings.Trim(cfg.ThanksPath, "/")
	if thanks == "" {
		thanks = "thanks"
	}

	items := []exportItem{
		{name: "index.html", render: node(view.HomePage(site, cfg.Page))},
		{name: path.Join(thanks, "index.html"), render: node(view.ThanksPage(site, cfg.Page))},
		{name: "404.html", render: node(view.NotFoundPage(site, cfg.Page))},
	}

	assets, err := staticItems(cfg.Page)
	if err != nil {
		return nil, err
	}

	items = append(items, assets...)
	files := make([]File, len(items))

	indexed := make([]int, len(items))
	for i := range indexed {
		indexed[i] = i
	}

	err = app.ForEach(ctx, limit, indexed, func(_ context.Context, i int) error {
		item := items[i]

		data, err := item.render()
		if err != nil {
			return fmt.Errorf("rendering %s: %w", item.name, err)
		}

		target := filepath.Join(cfg.Dir, filepath.FromSlash(item.name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", item.name, err)
		}

		if err := os.WriteFile(target, data, 0o644); err != nil { //nolint:gosec // public site assets
			return fmt.Errorf("writing %s: %w", item.name, err)
		}

		files[i] = File{Path: item.name, Bytes: len(data)}

		logger.DebugContext(ctx, "exported file",
			slog.String("path", item.name),
			slog.Int("bytes", len(data)),
		)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("exporting site: %w", err)
	}

	logger.InfoContext(ctx, "site exported",
		slog.String("dir", cfg.Dir),
		slog.Int("files", len(files)),
	)

	return files, nil
}

func node(n g.Node) func() ([]byte, error) {
	return func() ([]byte, error) {
		s, err := view.String(n)
		return []byte(s), err
	}
}

func staticItems(opts view.PageOptions) ([]exportItem, error) {
	prefix := strings.Trim(opts.StaticPrefix, "/")
	if prefix == "" {
		prefix = strings.Trim(view.DefaultStaticPrefix, "/")
	}

	static := view.Static()

	var items []exportItem

	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		items = append(items, exportItem{
			name:   path.Join(prefix, p),
			render: func() ([]byte, error) { return fs.ReadFile(static, p) },
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing static assets: %w", err)
	}

	return items, nil
}
