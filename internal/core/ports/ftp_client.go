package ports

import "context"

// FtpClient is the transport contract for confirmation delivery.
type FtpClient interface {
	// Open establishes the FTP session for one scheduler cycle.
	Open(ctx context.Context) error

	// Close terminates the session.
	Close() error

	// IsConnected reports whether a session is currently open.
	IsConnected() bool

	// DirExists checks that the remote directory exists.
	DirExists(ctx context.Context, dir string) (bool, error)

	// Upload copies a local file to the remote path, overwriting any
	// existing file.
	Upload(ctx context.Context, localPath, remotePath string) error
}
