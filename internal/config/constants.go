package config

const (
	// DefaultDatabasePath is the default path for the user data database
	DefaultDatabasePath = "./lectio.db"

	// DefaultCorpusSource is the default directory holding the corpus documents
	DefaultCorpusSource = "./data"

	// DefaultBackupSchedule runs the backup daily at 03:00
	DefaultBackupSchedule = "0 3 * * *"
)
