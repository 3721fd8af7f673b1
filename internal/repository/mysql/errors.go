package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository/mysql/model"
)

const (
	errDupEntry        = 1062
	errLockWaitTimeout = 1205
	errLockDeadlock    = 1213
)

// Migrate creates or updates the tables this package uses
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.ContentItem{}, &model.ItemLike{}, &model.Comment{}, &model.Reply{})
}

func isDuplicate(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDupEntry
}

// translateError maps driver failures onto the domain error set.
// Domain errors pass through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errLockDeadlock, errLockWaitTimeout:
			return fmt.Errorf("%w: %s", domain.ErrPersistenceConflict, myErr.Message)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysqldriver.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return err
}
