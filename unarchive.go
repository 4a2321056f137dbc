// unarchive.go
package main

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
)

// resolveSourcePath returns a readable path for a dataset source file. When
// only a compressed variant exists alongside, it is unpacked next to the
// expected name. Archives are kept: dataset folders are inputs, not uploads.
func resolveSourcePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	for _, ext := range []string{".gz", ".lz4", ".zip"} {
		archived := path + ext
		if _, err := os.Stat(archived); err != nil {
			continue
		}
		if err := unpackArchive(archived, path); err != nil {
			return "", fmt.Errorf("unpack %s: %w", archived, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no such file: %s", path)
}

func unpackArchive(archived, destPath string) error {
	switch filepath.Ext(archived) {
	case ".gz":
		return unpackGzipArchive(archived, destPath)
	case ".lz4":
		return unpackLZ4Archive(archived, destPath)
	case ".zip":
		return unpackZipArchive(archived, destPath)
	}
	return fmt.Errorf("unsupported archive: %s", archived)
}

func unpackGzipArchive(archived, destPath string) error {
	file, err := os.Open(archived)
	if err != nil {
		return err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer gr.Close()
	return writeUnpacked(destPath, gr)
}

func unpackLZ4Archive(archived, destPath string) error {
	file, err := os.Open(archived)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeUnpacked(destPath, lz4.NewReader(file))
}

// unpackZipArchive extracts the largest file in the archive, same as the
// upload handling did: side files like readme entries are skipped.
func unpackZipArchive(archived, destPath string) error {
	r, err := zip.OpenReader(archived)
	if err != nil {
		return err
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return fmt.Errorf("empty archive: %s", archived)
	}
	rc, err := largestFile.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return writeUnpacked(destPath, rc)
}

func writeUnpacked(destPath string, r io.Reader) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	_, err = io.Copy(outFile, r)
	return err
}
