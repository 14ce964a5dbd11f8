package config

// Gorm engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// Storage drivers.
const (
	StorageGorm     = "gorm"
	StorageMySQL    = "mysql"
	StoragePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	Path       string // sqlite database file
	GormEngine string `validate:"oneof=sqlite mysql postgres"`
}

// Storage selects where the page's key/value blobs live. The gorm driver
// stores them through DB, the others use a gofiber storage table on the
// same server.
type Storage struct {
	Driver string `validate:"oneof=gorm mysql postgres"`
	Table  string
}
