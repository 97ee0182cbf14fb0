package cmd

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateArchive bundles the contents of srcDir into a zip file at
// zipPath. Entry names are relative to srcDir so the archive unpacks
// into the same tree. Walk order is lexical, which keeps the archive
// stable across runs.
func CreateArchive(srcDir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", zipPath, err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		entry, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(entry, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", srcDir, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive %s: %w", zipPath, err)
	}
	return nil
}
