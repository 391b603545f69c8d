package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/0Hoxy/fixedExpenses/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the whole suite.
// Scenarios call Reset between runs instead of reopening the database.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the suite database and migrates the full schema. The
// connection is shared; a single open connection keeps the in-memory
// database alive for the duration of the suite.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models()...); err != nil {
		panic(fmt.Sprintf("failed to migrate schema. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// Reset deletes all rows, children before parents so foreign keys hold.
func (d *Db) Reset() error {
	for _, m := range models() {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func models() []any {
	return []any{
		&model.PhotoModel{},
		&model.StatusHistoryModel{},
		&model.PaymentHistoryModel{},
		&model.InstallmentDetailModel{},
		&model.SubscriptionDetailModel{},
		&model.RegularDetailModel{},
		&model.ExpenditureModel{},
		&model.PaymentMethodModel{},
		&model.CategoryModel{},
		&model.ProfileModel{},
	}
}
