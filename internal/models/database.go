package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type SBContext string

const (
	DBContextURL SBContext = "sb-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration with foreign keys disabled since sqlite does not
	// support ALTER COLUMN and tables are recreated during migration
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled so that deletes cascade
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and serializes
	// all ledger transactions of the process.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "staffing_budget:after_query", queryCallback},
		{db.Callback().Query().After("*"), "staffing_budget:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "staffing_budget:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "staffing_budget:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "staffing_budget:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "staffing_budget:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "staffing_budget:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

var uniqueConstraints = map[string]error{
	"UNIQUE constraint failed: projects.name":                                       ErrProjectNameNotUnique,
	"UNIQUE constraint failed: employees.email":                                     ErrEmployeeEmailNotUnique,
	"UNIQUE constraint failed: budget_periods.project_id, budget_periods.month":     ErrBudgetPeriodNotUnique,
	"UNIQUE constraint failed: allocations.budget_period_id, allocations.employee_id": ErrAllocationDuplicate,
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for message, err := range uniqueConstraints {
		if strings.Contains(db.Error.Error(), message) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// Registry lists all models. Dependent models come first so that
// deleting in this order never violates a foreign key.
func Registry() []any {
	return []any{&Allocation{}, &BudgetPeriod{}, &Employee{}, &Project{}}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Project{}, Employee{}, BudgetPeriod{}, Allocation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// DeleteAll permanently deletes all resources.
func DeleteAll(db *gorm.DB) error {
	return transaction(db, func(tx *gorm.DB) error {
		for _, model := range Registry() {
			err := tx.Where("true").Delete(model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// transaction runs fc in a database transaction.
//
// Errors starting the transaction are not seen by the callbacks,
// they are translated here.
func transaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	err := db.Transaction(fc)
	if err != nil && err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}
