package fetch

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/tklug26/modis-fetch/internal/model"
	"github.com/tklug26/modis-fetch/internal/modis"
)

// Connection constants
const (
	// ControlPort is the standard FTP control port
	ControlPort = "21"

	// AnonymousUser and AnonymousPass are the archive's anonymous credentials
	AnonymousUser = "anonymous"
	AnonymousPass = "anonymous"

	// DefaultDialTimeout bounds connection setup. The archive occasionally
	// hangs on the control channel; an unbounded dial would stall the whole
	// batch.
	DefaultDialTimeout = 30 * time.Second
)

// Service is the transfer driver. One fetch attempt opens one connection,
// resolves the hosted filename by listing, downloads it, and releases the
// connection on every exit path.
type Service struct {
	host       string
	collection string
	outputDir  string
	timeout    time.Duration
	dial       Dialer
}

// NewService creates a transfer driver against host using the given archive
// collection segment, writing downloads into outputDir.
func NewService(host, collection, outputDir string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	return &Service{
		host:       host,
		collection: collection,
		outputDir:  outputDir,
		timeout:    timeout,
		dial:       DialFTP,
	}
}

// SetDialer overrides the connection factory. Used by tests.
func (s *Service) SetDialer(dial Dialer) {
	s.dial = dial
}

// Fetch resolves and downloads one tile. Every failure is caught, logged
// with the request date, and returned as a classified result; it never
// panics and never aborts the caller's loop.
func (s *Service) Fetch(req model.DownloadRequest) model.FetchResult {
	partial := modis.PartialFilename(req.Product, req.Year, req.DayOfYear, req.HGrid, req.VGrid)
	dir := modis.RemotePath(s.collection, req.Product, req.Year, req.DayOfYear)

	conn, err := s.dial(net.JoinHostPort(s.host, ControlPort), s.timeout)
	if err != nil {
		return s.fail(req, model.FetchStatusConnectError, fmt.Errorf("dial %s: %w", s.host, err))
	}
	defer conn.Quit()

	if err := conn.Login(AnonymousUser, AnonymousPass); err != nil {
		return s.fail(req, model.FetchStatusConnectError, fmt.Errorf("login: %w", err))
	}
	if err := conn.ChangeDir(dir); err != nil {
		return s.fail(req, model.FetchStatusConnectError, fmt.Errorf("cwd %s: %w", dir, err))
	}

	entries, err := conn.NameList("")
	if err != nil {
		return s.fail(req, model.FetchStatusTransferError, fmt.Errorf("list %s: %w", dir, err))
	}

	name, ok := modis.MatchListing(entries, partial)
	if !ok {
		return s.fail(req, model.FetchStatusNoMatch,
			fmt.Errorf("no entry matches %s (%d listed)", partial, len(entries)))
	}

	if err := s.download(conn, name); err != nil {
		return s.fail(req, model.FetchStatusTransferError, err)
	}

	log.Printf("downloaded %s for %s", name, req.Date())
	return model.FetchResult{Request: req, Status: model.FetchStatusDownloaded, Filename: name}
}

// download streams the remote entry into outputDir under the same name.
// No integrity check is performed; a completed copy counts as success.
func (s *Service) download(conn Client, name string) error {
	r, err := conn.Retr(name)
	if err != nil {
		return fmt.Errorf("retr %s: %w", name, err)
	}
	defer r.Close()

	local := filepath.Join(s.outputDir, name)
	f, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("create %s: %w", local, err)
	}

	_, copyErr := io.Copy(f, r)
	if closeErr := f.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		return fmt.Errorf("write %s: %w", local, copyErr)
	}
	return nil
}

func (s *Service) fail(req model.DownloadRequest, status model.FetchStatus, err error) model.FetchResult {
	log.Printf("fetch %s %s failed (%s): %v", req.Product, req.Date(), status, err)
	return model.FetchResult{Request: req, Status: status, LastError: err.Error()}
}
