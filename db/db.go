package db

import (
	"garden/config"
	"log"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		log.Printf("MYSQL_DSN not set, using SQLite file %s", config.SQLITE_FILE)
		dialector = sqlite.Open(SQLiteDSN(config.SQLITE_FILE))
	}
	db, err := Open(dialector)
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
}

// SQLiteDSN turns foreign keys on for every connection, SQLite ignores them (and their cascades) otherwise
func SQLiteDSN(file string) string {
	if strings.Contains(file, "_foreign_keys=") || strings.Contains(file, "_fk=") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}
