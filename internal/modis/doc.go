package modis

// Package modis encodes the archive naming conventions: partial filename
// construction, remote directory layout, the Terra/Aqua counterpart product
// mapping, and the listing prefix-match rule used to resolve the hosted
// filename.
