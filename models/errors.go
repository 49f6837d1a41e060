package models

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrNoParentRow    = 1452
)

var (
	ErrNoTagSelected    = errors.New("no tag selected")
	ErrPlantTagTaken    = errors.New("tag is already attached to this plant")
	ErrPlantTagInvalid  = errors.New("plant tag needs an existing plant and tag")
	ErrPlantTagCreation = errors.New("plant tag creation failed")
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	// SQLite only reports it in the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyError reports a reference to a plant or tag that doesn't exist
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrNoParentRow
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}
