package rng

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
)

// SeedFor derives a deterministic seed for a named stream from a base seed.
// Each mechanic validates under its own stream, so parallel validations stay
// reproducible and independent. The derivation is the first 32 bits of
// MD5("{base}:{name}"), kept to match the reference seeds exactly.
func SeedFor(base int64, name string) uint64 {
	sum := md5.Sum([]byte(StreamName(base, name)))
	hexDigest := hex.EncodeToString(sum[:])
	v, err := strconv.ParseUint(hexDigest[:8], 16, 64)
	if err != nil {
		// Eight hex characters always parse.
		panic(err)
	}
	return v
}

// StreamName is the printable identity of a derived stream, echoed in
// results so a run can be reproduced from its report alone.
func StreamName(base int64, name string) string {
	return fmt.Sprintf("%d:%s", base, name)
}

// UniformitySeed is the fixed offset stream used for the RNG self-test,
// independent of any mechanic.
func UniformitySeed(base int64) uint64 {
	return uint64(base + 999)
}
