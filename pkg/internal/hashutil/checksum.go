package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/dictator/pkg/types"
)

// Checksum returns the SHA256 checksum of data as "sha256:<hex>"
func Checksum(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// FileChecksum calculates the SHA256 checksum of a file read through fs
func FileChecksum(fs types.FS, path string) (string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Checksum(data), nil
}

// SameContent reports whether two files have identical checksums
func SameContent(fs types.FS, a, b string) (bool, error) {
	sumA, err := FileChecksum(fs, a)
	if err != nil {
		return false, err
	}
	sumB, err := FileChecksum(fs, b)
	if err != nil {
		return false, err
	}
	return sumA == sumB, nil
}
