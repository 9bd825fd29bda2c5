package library

import (
	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Document is one rendered library asset with a content fingerprint used for
// cheap change detection.
type Document struct {
	Name    string // Model name
	Path    string // Relative asset path, <Name>.mo
	Content []byte // Rendered Modelica source
	Hash    uint64 // Content fingerprint
}

// Hash fingerprints rendered content.
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
