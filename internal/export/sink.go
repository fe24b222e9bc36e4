// Package export serializes dashboard data into CSV text and paginated
// PDF reports. Document construction is pure; only the FileSink
// boundary can fail, and a failed save never leaves a partial file.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink is the capability the serializers hand finished documents
// to. Implementations decide what "download" means for their host.
type FileSink interface {
	Save(data []byte, filename, mimeType string) error
}

// DirSink saves files into a directory. Writes go through a temp file
// and a rename so the named file either appears complete or not at all.
// The MIME type is ignored: on a filesystem the extension carries it.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(data []byte, filename, _ string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("export dir %s: %w", s.Dir, err)
	}
	tmp, err := os.CreateTemp(s.Dir, filename+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", filename, err)
	}
	dst := filepath.Join(s.Dir, filename)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
