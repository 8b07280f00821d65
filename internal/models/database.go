package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/studentbudget/backend/internal/budget"
	"gorm.io/gorm"
)

var DB *gorm.DB

type SBContext string

const (
	DBContextURL SBContext = "sb-backend-url"
)

var plural = regexp.MustCompile("ies$")

// Connect opens the SQLite database, migrates the schema, seeds
// the expense categories and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	err = seedCategories(db, budget.Default())
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
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

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "student_budget:after_query", queryCallback},
		{db.Callback().Query().After("*"), "student_budget:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "student_budget:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "student_budget:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "student_budget:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "student_budget:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "student_budget:after_delete_general", generalCallback},
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

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: expense_categories.name"):
		db.Error = ErrCategoryNameNotUnique
	case strings.Contains(msg, "UNIQUE constraint failed: post_likes.post_id, post_likes.user_id"),
		strings.Contains(msg, "UNIQUE constraint failed: post_bookmarks.post_id, post_bookmarks.user_id"):
		db.Error = ErrReactionExists
	case strings.Contains(msg, "CHECK constraint failed: amount_positive"):
		db.Error = ErrAmountNotPositive
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		db.Error = ErrReferenceNotFound
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

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(UserProfile{}, ExpenseCategory{}, Expense{}, Post{}, PostComment{}, PostLike{}, PostBookmark{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// seedCategories makes sure that every entry of the registry
// exists as expense category. Existing categories get their
// style updated, categories not in the registry are kept so
// that expenses referencing them stay valid.
func seedCategories(db *gorm.DB, registry *budget.Registry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range registry.Entries() {
			var category ExpenseCategory
			err := tx.
				Where(ExpenseCategory{Name: entry.Name}).
				Assign(ExpenseCategory{Icon: entry.Icon, Color: entry.Color, Background: entry.Background}).
				FirstOrCreate(&category).Error
			if err != nil {
				return fmt.Errorf("error seeding category %s: %w", entry.Name, err)
			}
		}

		return nil
	})
}
