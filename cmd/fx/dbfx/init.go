package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmood/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	infra.Migrate(db)
	return db
}
