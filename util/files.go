package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// MD5File is the hex digest of a file's contents, logged so that a training
// run can be matched to the exact corpus it read
func MD5File(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := md5.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", fmt.Errorf("hashing %s: %w", filename, err)
	}
	return fmt.Sprintf("%x", digest.Sum(nil)), nil
}
