package ports

// FileStorage is the local filesystem contract used by the pipelines for
// inbox scanning, archival and confirmation staging. All paths are local;
// patterns use filesystem glob syntax.
type FileStorage interface {
	// CountFiles counts files in dir whose names match pattern.
	CountFiles(dir, pattern string) (int, error)

	// ListFiles returns the names of files in dir matching pattern,
	// ordered by creation time, earliest first.
	ListFiles(dir, pattern string) ([]string, error)

	// MoveFile moves srcName from srcDir into dstDir under dstName.
	MoveFile(srcDir, dstDir, srcName, dstName string) error

	// ClearDir removes all regular files inside dir, leaving dir in place.
	ClearDir(dir string) error

	// CreateZip compresses the files of srcDir into an archive at dstPath.
	CreateZip(srcDir, dstPath string) error

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool

	// WriteTextFile creates a text file at path with the given content.
	WriteTextFile(path, content string) error
}
