package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultFixturePath is the default directory scanned for fixture files
	DefaultFixturePath = "tests"
	// DefaultWorkers is the default number of workers used by check
	DefaultWorkers = 4
	// DefaultEnvFile is the env file loaded from the project path
	DefaultEnvFile = ".env"

	// DefaultDBHost is the default catalog database host
	DefaultDBHost = "127.0.0.1"
	// DefaultDBPort is the default catalog database port
	DefaultDBPort = "3306"
	// DefaultDBUser is the default catalog database user
	DefaultDBUser = "root"
	// DefaultDBName is the default catalog database name
	DefaultDBName = "okc"
	// DefaultDBTable is the default catalog table
	DefaultDBTable = "test_catalog"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for fixtures
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"__pycache__",
	"submissions",
	"backups",
}
