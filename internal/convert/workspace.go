package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// workspace is the scoped working directory of one conversion run.
type workspace struct {
	dir string
}

// newWorkspace creates a fresh temporary directory under root, or under the
// system temp directory when root is empty.
func newWorkspace(root string) (*workspace, error) {
	dir, err := os.MkdirTemp(root, "dynamicwallpaperconverter-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &workspace{dir: dir}, nil
}

// Join resolves a name inside the workspace.
func (w *workspace) Join(name string) string {
	return filepath.Join(w.dir, name)
}

// Close removes the workspace and everything in it.
func (w *workspace) Close() error {
	return os.RemoveAll(w.dir)
}
