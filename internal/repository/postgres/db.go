package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Community_Hub/internal/model"
)

var DB *gorm.DB

func InitDB(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	return err
}

func Migrate() error {
	tables := []any{
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Category{},
		&model.Post{},
		&model.Event{},
		&model.EventAttendee{},
		&model.Poll{},
		&model.PollOption{},
		&model.PollVote{},
		&model.ActivityOutbox{},
	}
	migrator := DB.Migrator()
	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := DB.AutoMigrate(table); err != nil {
				return err
			}
		}
	}
	return nil
}
