package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"sponsorhub/db/migrations"
)

// Migrate moves the schema at addr to migrations.Version. A nil error is
// returned when the schema is already current.
func Migrate(addr string) error {
	return MigrateTo(addr, migrations.Version)
}

// MigrateTo moves the schema at addr up or down to version. Version 0
// rolls every migration back.
func MigrateTo(addr string, version uint) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if version == 0 {
		err = mg.Down()
	} else {
		err = mg.Migrate(version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
