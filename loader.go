package weba

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"

	"github.com/pthm/weba/lib/snapshot"
)

// maxCachedTemplates bounds the template cache. When it is full an
// arbitrary entry is evicted.
const maxCachedTemplates = 512

type sourceKind int

const (
	sourceInline sourceKind = iota
	sourceBytes
	sourceFile
	sourceTempl
)

// source is a component source classified once at definition time.
type source struct {
	kind   sourceKind
	markup string
	raw    []byte
	path   string
	templ  templ.Component
	err    error

	// scope separates file entries read from different fs.FS values.
	scope string
}

func classifySource(src any, dir string) source {
	switch v := src.(type) {
	case string:
		if isTemplatePath(v) {
			p := strings.TrimSpace(v)
			if dir != "" && !filepath.IsAbs(p) {
				p = filepath.Join(dir, p)
			}
			return source{kind: sourceFile, path: p}
		}
		return source{kind: sourceInline, markup: v}
	case []byte:
		return source{kind: sourceBytes, raw: v}
	case templ.Component:
		return source{kind: sourceTempl, templ: v}
	case nil:
		return source{err: ErrSourceMissing}
	}
	return source{err: fmt.Errorf("%w: %T", ErrSourceType, src)}
}

// isTemplatePath reports whether s names a markup file rather than holding
// markup.
func isTemplatePath(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.ContainsAny(s, "<>\n") {
		return false
	}
	return strings.HasSuffix(s, ".html") || strings.HasSuffix(s, ".htm")
}

// load returns a fresh template tree for one component instance.
func (s source) load(ctx context.Context, cfg Config, component string) (*Node, error) {
	if s.err != nil {
		return nil, s.err
	}
	log := cfg.Logger.With("component", component)

	switch s.kind {
	case sourceTempl:
		var buf bytes.Buffer
		if err := s.templ.Render(Detach(ctx), &buf); err != nil {
			return nil, fmt.Errorf("weba: render templ source: %w", err)
		}
		return parseMarkup(buf.String(), cfg.Parser)

	case sourceFile:
		modTime, err := s.stat(cfg)
		if err != nil {
			return nil, err
		}
		key := "file:" + cfg.Parser.String() + ":" + s.scope + ":" + s.path
		return templates.load(log, key, modTime, cfg.DisableCache, func() (*Node, error) {
			b, err := s.read(cfg)
			if err != nil {
				return nil, err
			}
			log.Debug("weba: template read", "path", s.path, "bytes", len(b))
			return ParseBytes(b, WithParser(cfg.Parser))
		})

	case sourceBytes:
		key := "bytes:" + cfg.Parser.String() + ":" + digest(s.raw)
		return templates.load(log, key, time.Time{}, cfg.DisableCache, func() (*Node, error) {
			return ParseBytes(s.raw, WithParser(cfg.Parser))
		})
	}

	key := "inline:" + cfg.Parser.String() + ":" + digest([]byte(s.markup))
	return templates.load(log, key, time.Time{}, cfg.DisableCache, func() (*Node, error) {
		return parseMarkup(s.markup, cfg.Parser)
	})
}

func (s source) fsPath() string {
	return path.Clean(strings.TrimPrefix(filepath.ToSlash(s.path), "/"))
}

func (s source) stat(cfg Config) (time.Time, error) {
	var (
		info fs.FileInfo
		err  error
	)
	if cfg.FS != nil {
		info, err = fs.Stat(cfg.FS, s.fsPath())
	} else {
		info, err = os.Stat(s.path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, s.path)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("weba: stat template %s: %w", s.path, err)
	}
	return info.ModTime(), nil
}

func (s source) read(cfg Config) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if cfg.FS != nil {
		b, err = fs.ReadFile(cfg.FS, s.fsPath())
	} else {
		b, err = os.ReadFile(s.path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("weba: read template %s: %w", s.path, err)
	}
	return b, nil
}

func digest(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// templateCache keeps parsed templates as snapshots. Every load decodes a
// new tree, so instances never share nodes.
type templateCache struct {
	mu      sync.RWMutex
	entries map[string]cachedTemplate
	maxSize int
}

type cachedTemplate struct {
	snap    []byte
	modTime time.Time
}

// fsScopes numbers definitions that read from an fs.FS.
var fsScopes atomic.Uint64

func nextFSScope() string {
	return fmt.Sprintf("fs%d", fsScopes.Add(1))
}

var templates = &templateCache{
	entries: make(map[string]cachedTemplate),
	maxSize: maxCachedTemplates,
}

// ClearTemplateCache drops every cached template.
func ClearTemplateCache() {
	templates.mu.Lock()
	templates.entries = make(map[string]cachedTemplate)
	templates.mu.Unlock()
}

type logger interface {
	Debug(msg string, args ...any)
}

func (c *templateCache) load(log logger, key string, modTime time.Time, bypass bool, parse func() (*Node, error)) (*Node, error) {
	if bypass {
		return parse()
	}

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !cached.modTime.Before(modTime) {
		h, err := snapshot.Decode(cached.snap)
		if err == nil {
			log.Debug("weba: template cache hit", "key", key)
			return wrap(h), nil
		}
		log.Debug("weba: discarding unreadable template snapshot", "key", key, "error", err)
	}

	n, err := parse()
	if err != nil {
		return nil, err
	}
	snap, err := snapshot.Encode(n.elem)
	if err != nil {
		return n, nil
	}

	c.mu.Lock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = cachedTemplate{snap: snap, modTime: modTime}
	c.mu.Unlock()

	log.Debug("weba: template cached", "key", key, "bytes", len(snap))
	return n, nil
}
