package model

// FetchStatus classifies the outcome of a single fetch attempt
type FetchStatus string

const (
	// FetchStatusDownloaded means the tile was resolved and written locally
	FetchStatusDownloaded FetchStatus = "Downloaded"

	// FetchStatusConnectError means the archive could not be reached, the
	// anonymous login was rejected, or the remote directory does not exist
	FetchStatusConnectError FetchStatus = "ConnectError"

	// FetchStatusNoMatch means the listing succeeded but no entry started
	// with the partial filename (covers an empty directory)
	FetchStatusNoMatch FetchStatus = "NoMatch"

	// FetchStatusTransferError means listing or download I/O failed after a
	// successful connection
	FetchStatusTransferError FetchStatus = "TransferError"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// OK reports whether the attempt produced a local file
func (fs FetchStatus) OK() bool {
	return fs == FetchStatusDownloaded
}

// FetchResult is the outcome of one fetch attempt. Filename is set only
// when Status is Downloaded; LastError carries the diagnostic for the step
// that failed otherwise.
type FetchResult struct {
	Request   DownloadRequest
	Status    FetchStatus
	Filename  string // resolved remote filename
	LastError string // diagnostic for the failed step, empty on success
}

// OK reports whether the fetch succeeded
func (r FetchResult) OK() bool {
	return r.Status.OK()
}
