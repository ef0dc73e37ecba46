// Package generate turns the configured menu into its rendered output file.
package generate

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/navmenu"
)

// Generator loads and renders one menu.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a generator for cfg.
func New(cfg *config.Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// LoadMenu returns the configured menu: the YAML source when one is set,
// otherwise the built-in integrations table. Either way the menu is validated.
func (g *Generator) LoadMenu() (navmenu.Menu, error) {
	if g.cfg.Menu.Source == "" {
		m := navmenu.Integrations()
		if g.cfg.Menu.Name != "" && g.cfg.Menu.Name != m.Name() {
			m = navmenu.New(g.cfg.Menu.Name, m.Entries()...)
		}
		if err := m.Validate(); err != nil {
			return navmenu.Menu{}, err
		}
		return m, nil
	}
	return navmenu.Load(g.cfg.Menu.Name, g.cfg.Menu.Source)
}

// Options derives render options from the configuration.
func (g *Generator) Options() navmenu.RenderOptions {
	return navmenu.RenderOptions{BaseURL: g.cfg.Menu.BaseURL, MenuName: g.cfg.Menu.Name}
}

// Render writes the menu in the configured format to w.
func (g *Generator) Render(w io.Writer) error {
	format, err := navmenu.ParseFormat(g.cfg.Output.Format)
	if err != nil {
		return err
	}
	m, err := g.LoadMenu()
	if err != nil {
		return err
	}
	return navmenu.Render(w, m, format, g.Options())
}

// Generate renders to the configured output path, or to stdout when no path
// is set. A file is replaced atomically, so a failed render leaves the
// previous output untouched.
func (g *Generator) Generate(ctx context.Context, stdout io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		return err
	}

	path := g.cfg.Output.Path
	if path == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	g.logger.Info("Menu generated",
		logfields.Menu(g.cfg.Menu.Name),
		logfields.Format(g.cfg.Output.Format),
		logfields.Path(path),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

// WriteFileAtomic writes data to a sibling temp file and renames it over path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return derrors.FileSystemError("mkdir", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return derrors.FileSystemError("create", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return derrors.FileSystemError("write", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return derrors.FileSystemError("close", tmp.Name(), err)
	}
	// #nosec G302 -- generated site configuration is world-readable.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return derrors.FileSystemError("chmod", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return derrors.FileSystemError("rename", path, err)
	}
	return nil
}
