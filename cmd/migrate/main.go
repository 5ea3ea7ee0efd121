// Comando de migraciones de esquema. Uso:
//
//	migrate up            aplica todas las migraciones pendientes
//	migrate down [n]      revierte n migraciones (1 por defecto)
//	migrate version       muestra la versión actual del esquema
package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/factora/pos-api/pkg/config"
	"github.com/factora/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if len(os.Args) < 2 {
		log.Fatal().Msg("uso: migrate <up|down [n]|version>")
	}

	// El driver pgx/v5 de golang-migrate espera el esquema pgx5://.
	dsn := strings.Replace(cfg.DB.ConnectionString(), "postgres://", "pgx5://", 1)
	dsn = strings.Replace(dsn, "postgresql://", "pgx5://", 1)

	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir migraciones")
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("esquema al día, nada que aplicar")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")

	case "down":
		n := 1
		if len(os.Args) > 2 {
			n, err = strconv.Atoi(os.Args[2])
			if err != nil || n <= 0 {
				log.Fatal().Msg("down espera un número positivo de pasos")
			}
		}
		if err := m.Steps(-n); err != nil {
			log.Fatal().Err(err).Msg("revertir migraciones")
		}
		log.Info().Int("pasos", n).Msg("migraciones revertidas")

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("esquema sin migraciones aplicadas")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("consultar versión")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión del esquema")

	default:
		log.Fatal().Str("comando", os.Args[1]).Msg("comando desconocido")
	}
}
