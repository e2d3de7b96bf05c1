package modis

import (
	"fmt"
	"strings"
)

// Archive layout constants
const (
	// DefaultHost is the LAADS anonymous FTP archive
	DefaultHost = "ladsweb.nascom.nasa.gov"

	// DefaultCollection is the processing collection segment of the archive path
	DefaultCollection = "5"

	// archiveRoot is the fixed top-level directory of the archive
	archiveRoot = "allData"
)

// Platform prefixes
const (
	PrefixTerra = "MOD" // Terra platform product prefix
	PrefixAqua  = "MYD" // Aqua platform product prefix

	platformPrefixLen = 3
)

// PartialFilename formats the predictable head of an archive filename:
// <PRODUCT>.A<YYYY><DDD>.h<HH>v<VV>. The hosted filename extends this with
// a processing timestamp, collection and extension that are unknown until
// the remote directory is listed. Formatting is total over any integer
// input: out-of-range values produce malformed but well-formed strings
// rather than errors, and the archive answers them with an ordinary miss.
func PartialFilename(product string, year, dayOfYear, hGrid, vGrid int) string {
	return fmt.Sprintf("%s.A%04d%03d.h%02dv%02d",
		NormalizeProduct(product), year, dayOfYear, hGrid, vGrid)
}

// RemotePath formats the archive directory holding all tiles of a product
// for one day: allData/<collection>/<PRODUCT>/<YYYY>/<DDD>/.
func RemotePath(collection, product string, year, dayOfYear int) string {
	return fmt.Sprintf("%s/%s/%s/%04d/%03d/",
		archiveRoot, collection, NormalizeProduct(product), year, dayOfYear)
}

// NormalizeProduct upper-cases a product code
func NormalizeProduct(product string) string {
	return strings.ToUpper(product)
}

// CounterpartProduct swaps the 3-character platform prefix between the two
// sensor platforms (MOD <-> MYD), leaving the remainder of the product code
// unchanged. ok is false when the code carries neither prefix.
func CounterpartProduct(product string) (string, bool) {
	p := NormalizeProduct(product)
	if len(p) < platformPrefixLen {
		return p, false
	}
	switch p[:platformPrefixLen] {
	case PrefixTerra:
		return PrefixAqua + p[platformPrefixLen:], true
	case PrefixAqua:
		return PrefixTerra + p[platformPrefixLen:], true
	}
	return p, false
}

// MatchListing returns the first listing entry whose head equals partial.
// First match in server order wins; ok is false when nothing matches,
// including an empty listing.
func MatchListing(entries []string, partial string) (string, bool) {
	for _, name := range entries {
		if strings.HasPrefix(name, partial) {
			return name, true
		}
	}
	return "", false
}
