package postgres

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/catalogrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a postgres URL from its parts.
func DSN(host, port, user, password, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects with error translation enabled so that unique and foreign key
// violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. Referenced tables come first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.UserRoleDTO{},
		&userrepo.UserPermissionDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
