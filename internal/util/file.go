package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// SafeJoin joins rel onto root and refuses paths that climb out of root.
func SafeJoin(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("absolute asset path %q not allowed", rel)
	}
	p := filepath.Join(root, filepath.Clean("/"+rel))
	r := filepath.Clean(root)
	if p != r && !strings.HasPrefix(p, r+string(filepath.Separator)) {
		return "", fmt.Errorf("asset path %q escapes %s", rel, root)
	}
	return p, nil
}
