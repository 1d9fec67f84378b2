// Package ftp implements the FTP transport contract using jlaffaye/ftp.
package ftp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
)

// ErrNotConnected is returned when an operation is attempted outside an
// Open/Close session.
var ErrNotConnected = errors.New("ftp session is not open")

const dialTimeout = 30 * time.Second

// Client holds one FTP session per scheduler cycle.
type Client struct {
	addr     string
	user     string
	password string
	conn     *ftp.ServerConn
}

// NewClient creates an FTP client for the given server address
// (host:port) and credentials. No connection is made until Open.
func NewClient(addr, user, password string) *Client {
	return &Client{
		addr:     addr,
		user:     user,
		password: password,
	}
}

// Open dials the server and logs in.
func (c *Client) Open(ctx context.Context) error {
	conn, err := ftp.Dial(c.addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("dial ftp server %s: %w", c.addr, err)
	}

	if err := conn.Login(c.user, c.password); err != nil {
		_ = conn.Quit()
		return fmt.Errorf("ftp login: %w", err)
	}

	c.conn = conn
	return nil
}

// Close terminates the session.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	conn := c.conn
	c.conn = nil
	return conn.Quit()
}

// IsConnected reports whether a session is currently open.
func (c *Client) IsConnected() bool {
	return c.conn != nil
}

// DirExists checks that the remote directory exists by changing into it
// and back to the root.
func (c *Client) DirExists(ctx context.Context, dir string) (bool, error) {
	if c.conn == nil {
		return false, ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := c.conn.ChangeDir(dir); err != nil {
		return false, nil
	}
	if err := c.conn.ChangeDir("/"); err != nil {
		return false, fmt.Errorf("change back to ftp root: %w", err)
	}
	return true, nil
}

// Upload copies a local file to the remote path, overwriting any
// existing file.
func (c *Client) Upload(ctx context.Context, localPath, remotePath string) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer file.Close()

	if err := c.conn.Stor(remotePath, file); err != nil {
		return fmt.Errorf("upload %s to %s: %w", localPath, remotePath, err)
	}
	return nil
}
