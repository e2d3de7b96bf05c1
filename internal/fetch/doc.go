package fetch

// Package fetch implements the transfer pipeline against the anonymous FTP
// archive: per-tile filename resolution via directory listing, single-shot
// downloads, and the day-range batch loop with per-attempt accounting.
