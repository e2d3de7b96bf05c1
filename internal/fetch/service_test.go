package fetch

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tklug26/modis-fetch/internal/model"
)

// fakeClient scripts the FTP verbs for one connection.
type fakeClient struct {
	entries  []string
	content  string
	loginErr error
	cwdErr   error
	listErr  error
	retrErr  error

	dialedAddr string
	cwdPath    string
	retrName   string
	quitCalls  int
}

func (c *fakeClient) Login(user, password string) error {
	return c.loginErr
}

func (c *fakeClient) ChangeDir(path string) error {
	c.cwdPath = path
	return c.cwdErr
}

func (c *fakeClient) NameList(path string) ([]string, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.entries, nil
}

func (c *fakeClient) Retr(path string) (io.ReadCloser, error) {
	c.retrName = path
	if c.retrErr != nil {
		return nil, c.retrErr
	}
	return io.NopCloser(strings.NewReader(c.content)), nil
}

func (c *fakeClient) Quit() error {
	c.quitCalls++
	return nil
}

func (c *fakeClient) dialer() Dialer {
	return func(addr string, timeout time.Duration) (Client, error) {
		c.dialedAddr = addr
		return c, nil
	}
}

func newTestService(t *testing.T, client *fakeClient) *Service {
	t.Helper()
	svc := NewService("archive.example.org", "5", t.TempDir(), time.Second)
	svc.SetDialer(client.dialer())
	return svc
}

func testRequest() model.DownloadRequest {
	return model.DownloadRequest{Product: "MOD09A1", Year: 2003, DayOfYear: 1, HGrid: 10, VGrid: 5}
}

func TestFetchSuccess(t *testing.T) {
	client := &fakeClient{
		entries: []string{
			"MOD09A1.A2003001.h10v05.006.2015045123456.hdf",
			"OTHERFILE.txt",
		},
		content: "tile-bytes",
	}
	svc := newTestService(t, client)

	res := svc.Fetch(testRequest())

	if !res.OK() {
		t.Fatalf("expected success, got %s: %s", res.Status, res.LastError)
	}
	if res.Filename != "MOD09A1.A2003001.h10v05.006.2015045123456.hdf" {
		t.Errorf("unexpected resolved filename: %q", res.Filename)
	}
	if client.dialedAddr != "archive.example.org:21" {
		t.Errorf("expected dial on control port 21, got %q", client.dialedAddr)
	}
	if client.cwdPath != "allData/5/MOD09A1/2003/001/" {
		t.Errorf("unexpected remote directory: %q", client.cwdPath)
	}
	if client.retrName != res.Filename {
		t.Errorf("expected retr of %q, got %q", res.Filename, client.retrName)
	}

	local := filepath.Join(svc.outputDir, res.Filename)
	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("expected downloaded file at %s: %v", local, err)
	}
	if string(data) != "tile-bytes" {
		t.Errorf("unexpected file content: %q", data)
	}
	if client.quitCalls != 1 {
		t.Errorf("expected connection released exactly once, got %d", client.quitCalls)
	}
}

func TestFetchDialError(t *testing.T) {
	svc := NewService("archive.example.org", "5", t.TempDir(), time.Second)
	svc.SetDialer(func(addr string, timeout time.Duration) (Client, error) {
		return nil, errors.New("host unreachable")
	})

	res := svc.Fetch(testRequest())

	if res.Status != model.FetchStatusConnectError {
		t.Errorf("expected ConnectError, got %s", res.Status)
	}
	if res.LastError == "" {
		t.Error("expected a diagnostic in LastError")
	}
}

func TestFetchErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeClient
		expected model.FetchStatus
	}{
		{
			name:     "login rejected",
			client:   &fakeClient{loginErr: errors.New("530 not logged in")},
			expected: model.FetchStatusConnectError,
		},
		{
			name:     "remote directory absent",
			client:   &fakeClient{cwdErr: errors.New("550 no such directory")},
			expected: model.FetchStatusConnectError,
		},
		{
			name:     "listing fails",
			client:   &fakeClient{listErr: errors.New("426 transfer aborted")},
			expected: model.FetchStatusTransferError,
		},
		{
			name:     "empty listing",
			client:   &fakeClient{},
			expected: model.FetchStatusNoMatch,
		},
		{
			name:     "no entry matches",
			client:   &fakeClient{entries: []string{"OTHERFILE.txt"}},
			expected: model.FetchStatusNoMatch,
		},
		{
			name: "download fails",
			client: &fakeClient{
				entries: []string{"MOD09A1.A2003001.h10v05.006.2015045123456.hdf"},
				retrErr: errors.New("451 local error"),
			},
			expected: model.FetchStatusTransferError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.client)

			res := svc.Fetch(testRequest())

			if res.Status != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, res.Status)
			}
			if res.OK() {
				t.Error("expected a failed result")
			}
			if tt.client.quitCalls != 1 {
				t.Errorf("expected connection released exactly once, got %d", tt.client.quitCalls)
			}
		})
	}
}
