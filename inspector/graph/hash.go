package graph

import "github.com/minio/highwayhash"

// sourceKey must stay 32 bytes long
var sourceKey = []byte("ruleinspect-source-fingerprint!!")

// Hash fingerprints source content, identical input always yields the same value
func Hash(source []byte) uint64 {
	return highwayhash.Sum64(source, sourceKey)
}
