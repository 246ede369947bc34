package database

import (
	"serraria-backend/internal/config"
	"serraria-backend/internal/logger"
	"serraria-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.L.Fatal().Err(err).Msg("não foi possível conectar no banco")
	}

	if err := Migrate(DB); err != nil {
		logger.L.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	logger.L.Info().Msg("conexão com o banco ok, migration concluída")
}

// Migrate: cria/atualiza o schema. Separado do Init para os testes poderem
// rodar sobre outro banco.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.WoodStock{},
		&models.TruckDelivery{},
		&models.PalletProduction{},
		&models.Sale{},
		&models.AuditLog{},
	)
}
