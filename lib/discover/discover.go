package discover

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/schemaforge/schemaforge/lib/ir"
)

var dialectExtensions = map[ir.SourceDialect][]string{
	ir.DialectC:    {".c", ".h"},
	ir.DialectCpp:  {".cpp", ".cc", ".hpp", ".h"},
	ir.DialectJava: {".java"},
}

// build output directories are never scanned
var excludedDirs = map[string]bool{
	"obj":   true,
	"build": true,
}

// SourceFiles walks root recursively and returns every file matching the
// dialect's extensions, in sorted order. Files under obj/ or build/ subtrees
// are excluded.
func SourceFiles(root string, dialect ir.SourceDialect) ([]string, error) {
	exts, ok := dialectExtensions[dialect]
	if !ok {
		return nil, errors.Errorf("unknown source dialect %q", dialect)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && excludedDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(entry.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", root)
	}
	sort.Strings(files)
	return files, nil
}
