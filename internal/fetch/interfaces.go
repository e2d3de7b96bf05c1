package fetch

import (
	"io"
	"time"

	"github.com/tklug26/modis-fetch/internal/model"
)

// Client is the subset of FTP verbs the transfer driver uses.
type Client interface {
	Login(user, password string) error
	ChangeDir(path string) error
	NameList(path string) ([]string, error)
	Retr(path string) (io.ReadCloser, error)
	Quit() error
}

// Dialer opens a client connection to addr within timeout.
type Dialer func(addr string, timeout time.Duration) (Client, error)

// Fetcher defines the interface for the transfer driver.
type Fetcher interface {
	Fetch(req model.DownloadRequest) model.FetchResult
}
