package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const GZIP_SUFFIX = ".gz"

func MD5File(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	md5 := md5.New()
	if _, err := io.Copy(md5, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", md5.Sum(nil)), nil
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

type gzipWriteCloser struct {
	*gzip.Writer
	file *os.File
}

func (g *gzipWriteCloser) Close() error {
	if err := g.Writer.Close(); err != nil {
		g.file.Close()
		return err
	}
	return g.file.Close()
}

// OpenFile opens filename for reading, transparently decompressing files
// whose name ends in .gz
func OpenFile(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, GZIP_SUFFIX) {
		return file, nil
	}
	reader, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("opening gzip stream %s: %w", filename, err)
	}
	return &gzipReadCloser{reader, file}, nil
}

// CreateFile creates filename for writing, compressing the stream if the
// name ends in .gz
func CreateFile(filename string) (io.WriteCloser, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, GZIP_SUFFIX) {
		return file, nil
	}
	return &gzipWriteCloser{gzip.NewWriter(file), file}, nil
}
