// Package workspace wires the analysis core together: one Session owns the
// documents, the registry, the resolver, the scanner and the cache, so no
// state is ambient to the process.
package workspace

import (
	"fmt"
	"os"
	"sync"

	"github.com/colorpeek/colorpeek/internal/analysis"
	"github.com/colorpeek/colorpeek/internal/documents"
	"github.com/colorpeek/colorpeek/internal/indexer"
	"github.com/colorpeek/colorpeek/internal/log"
	"github.com/colorpeek/colorpeek/internal/palette"
	"github.com/colorpeek/colorpeek/internal/registry"
	"github.com/colorpeek/colorpeek/internal/resolver"
	"github.com/colorpeek/colorpeek/internal/scanner"
)

// Session is the analysis context passed into every core operation. It is
// constructed once per workspace, explicitly reset on full re-index, and
// pruned per file on deletion.
type Session struct {
	rootDir string

	documents *documents.Manager
	registry  *registry.Registry
	resolver  *resolver.Resolver
	scanner   *scanner.Scanner
	indexer   *indexer.Indexer
	cache     *analysis.Cache
	queue     *Queue

	configMu sync.RWMutex
	config   Config
}

// NewSession builds a Session rooted at rootDir with the given config.
func NewSession(rootDir string, cfg Config) *Session {
	reg := registry.New()
	res := resolver.New(reg)
	scan := scanner.New(reg, res)

	s := &Session{
		rootDir:   rootDir,
		documents: documents.NewManager(),
		registry:  reg,
		resolver:  res,
		scanner:   scan,
		indexer:   indexer.New(reg, res),
		queue:     NewQueue(64),
		config:    cfg,
	}
	s.cache = analysis.NewCache(func(doc *documents.Document) ([]scanner.Occurrence, error) {
		return scan.Scan(doc.Content()), nil
	})
	return s
}

// Close stops the session's event queue.
func (s *Session) Close() {
	s.queue.Close()
}

// Config returns a snapshot of the current configuration.
func (s *Session) Config() Config {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.config
}

// Registry exposes the property registry for read-side consumers.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Resolver exposes the reference resolver.
func (s *Session) Resolver() *resolver.Resolver {
	return s.resolver
}

// Documents exposes the document manager.
func (s *Session) Documents() *documents.Manager {
	return s.documents
}

// RootDir returns the workspace root directory.
func (s *Session) RootDir() string {
	return s.rootDir
}

// Analyze returns the color occurrences for an open document, serving from
// the cache when its revision is unchanged. Documents whose language is not
// enabled by configuration produce no occurrences.
func (s *Session) Analyze(uri string) ([]scanner.Occurrence, error) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	if !s.Config().IsLanguageEnabled(doc.LanguageID()) {
		return nil, nil
	}
	return s.cache.Analyze(doc)
}

// Reindex clears the registry and rebuilds it from every stylesheet under
// the workspace root.
func (s *Session) Reindex() error {
	return s.indexer.ReindexWorkspace(s.rootDir, s.Config().Stylesheets)
}

// Palette returns the deduplicated set of colors declared across all indexed
// custom properties.
func (s *Session) Palette() []palette.Entry {
	return palette.Extract(s.registry, s.resolver)
}

// ThemeVariants returns the default/dark/light declarations for a property.
func (s *Session) ThemeVariants(name string) resolver.Variants {
	return s.resolver.ThemeVariants(name)
}

// DidOpen registers a document for analysis.
func (s *Session) DidOpen(uri, languageID string, version int, content string) error {
	return s.documents.DidOpen(uri, languageID, version, content)
}

// DidChange replaces a document's content at a new revision. The cache entry
// for the previous revision becomes stale by comparison, not by explicit
// invalidation, so a failed later scan still serves the old result set.
func (s *Session) DidChange(uri string, version int, content string) error {
	return s.documents.DidChange(uri, version, content)
}

// DidClose forgets a document and drops its cache entry.
func (s *Session) DidClose(uri string) error {
	if err := s.documents.DidClose(uri); err != nil {
		return err
	}
	s.cache.Remove(uri)
	return nil
}

// FileChanged enqueues a re-index of one stylesheet after an external
// create/change event. The read happens on the queue worker, serialized with
// every other event-driven mutation.
func (s *Session) FileChanged(path string) {
	s.queue.Enqueue(func() {
		content, err := os.ReadFile(path)
		if err != nil {
			// Treated as no additional information; the registry keeps
			// whatever data it already has for other files.
			log.Warn("failed to read changed file %s: %v", path, err)
			return
		}
		s.indexer.IndexDocument(path, string(content))
	})
}

// FileDeleted enqueues removal of a deleted stylesheet's declarations.
func (s *Session) FileDeleted(path string) {
	s.queue.Enqueue(func() {
		removed := s.registry.RemoveFile(path)
		log.Debug("removed %d declarations from deleted file %s", removed, path)
	})
}

// ConfigChanged enqueues a configuration swap followed by a full re-index,
// since new stylesheet globs can change the registry contents entirely.
func (s *Session) ConfigChanged(cfg Config) {
	s.queue.Enqueue(func() {
		s.configMu.Lock()
		s.config = cfg
		s.configMu.Unlock()
		log.SetLevel(log.ParseLevel(cfg.LogLevel))

		if err := s.indexer.ReindexWorkspace(s.rootDir, cfg.Stylesheets); err != nil {
			log.Warn("re-index after config change: %v", err)
		}
	})
}

// Drain blocks until all queued events have been processed. Primarily for
// tests and for CLI runs that must observe event effects before exiting.
func (s *Session) Drain() {
	s.queue.Drain()
}
