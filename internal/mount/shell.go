package mount

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Shell is the host document the app is mounted into
type Shell struct {
	mu   sync.RWMutex
	src  []byte
	path string
}

// NewShell wraps an in-memory document, e.g. the embedded index.html
func NewShell(src []byte) *Shell {
	return &Shell{src: append([]byte(nil), src...)}
}

// LoadShell reads the host document from disk
func LoadShell(path string) (*Shell, error) {
	s := &Shell{path: filepath.Clean(path)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Bytes returns the current document source
func (s *Shell) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.src
}

// Path returns the file backing the shell, or "" when it is in memory
func (s *Shell) Path() string {
	return s.path
}

// Reload re-reads the document from its file
func (s *Shell) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read shell %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.src = data
	s.mu.Unlock()
	return nil
}

// Watch reloads the shell whenever its file is written or replaced, until
// ctx is done. In-memory shells return immediately.
func (s *Shell) Watch(ctx context.Context, logger *slog.Logger) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create shell watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}
	logger.Info("watching shell", "path", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				logger.Error("shell reload failed", "path", s.path, "error", err)
				continue
			}
			logger.Info("shell reloaded", "path", s.path, "op", event.Op.String())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("shell watcher error", "error", err)
		}
	}
}
