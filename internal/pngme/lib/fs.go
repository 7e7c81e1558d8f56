package lib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
	"github.com/rs/zerolog/log"
)

// ReadPNG loads and parses a whole PNG file.
func ReadPNG(path string) (*png.PNG, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("read file")

	p, err := png.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return p, nil
}

// WritePNG serializes p to path. The bytes go to a temporary file in the
// same directory which then replaces path, so a failed write never leaves a
// half-written image behind. An existing file's permissions are kept.
func WritePNG(path string, p *png.PNG) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	content := p.Bytes()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	log.Debug().Str("path", path).Int("bytes", len(content)).Int("chunks", p.Len()).Msg("wrote file")
	return nil
}

// BackupFile copies src to src+BackupSuffix, overwriting an older backup,
// and returns the backup's path.
func BackupFile(src string) (string, error) {
	dst := src + BackupSuffix

	sourceFile, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return "", err
	}
	// Make sure the copy is on disk before the original is replaced.
	if err := destFile.Sync(); err != nil {
		return "", err
	}
	return dst, nil
}
