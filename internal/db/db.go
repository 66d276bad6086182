package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// erros de chave duplicada viram gorm.ErrDuplicatedKey,
		// que a camada de caso de uso traduz em conflito de negócio
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no banco")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao obter sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BarberSchedule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("falha ao migrar o schema")
	}

	// índice único parcial: só agendamentos ativos seguram o slot.
	// Cancelados permanecem na tabela sem bloquear novas reservas.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_barber_slot
        ON appointments (barber_id, appointment_date)
        WHERE status IS NULL OR status = ''
    `)

	return db
}
