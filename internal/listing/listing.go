// Package listing enumerates the plain files of a directory for the index
// page.
package listing

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Entry describes one listed file.
type Entry struct {
	// Name is the bare file name, without any path separators.
	Name string
	// Size is the file size in bytes at listing time.
	Size uint64
}

// Files returns the regular files directly under dir, in directory order.
// Entries whose metadata cannot be read are skipped with a diagnostic;
// subdirectories and other non-regular entries are skipped silently.
func Files(dir string, logger log.Logger) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}

	var entries []Entry
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			level.Warn(logger).Log(
				"msg", "could not read entry metadata",
				"entry", d.Name(),
				"err", err,
			)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, Entry{Name: d.Name(), Size: uint64(info.Size())})
	}
	return entries, nil
}
