package fetch

import (
	"io"
	"time"

	"github.com/jlaffaye/ftp"
)

// ftpClient adapts *ftp.ServerConn to the Client interface.
type ftpClient struct {
	conn *ftp.ServerConn
}

// DialFTP opens an FTP control connection to addr. It is the production
// Dialer; tests substitute fakes.
func DialFTP(addr string, timeout time.Duration) (Client, error) {
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return &ftpClient{conn: conn}, nil
}

func (c *ftpClient) Login(user, password string) error {
	return c.conn.Login(user, password)
}

func (c *ftpClient) ChangeDir(path string) error {
	return c.conn.ChangeDir(path)
}

func (c *ftpClient) NameList(path string) ([]string, error) {
	return c.conn.NameList(path)
}

func (c *ftpClient) Retr(path string) (io.ReadCloser, error) {
	r, err := c.conn.Retr(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *ftpClient) Quit() error {
	return c.conn.Quit()
}
