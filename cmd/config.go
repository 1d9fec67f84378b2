package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	FtpHost     string
	FtpUser     string
	FtpPassword string

	OrderQueuePath    string
	OrderResponsePath string
	ArchivePath       string
	ExportTempPath    string
	ExportZipTempPath string

	IntervalSeconds int

	DisableOrderCreation        bool
	DisableResponseIngestion    bool
	DisableConfirmationDelivery bool
}
