// internal/app/bootstrap.go
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"go-side-shooter/internal/config"
	"go-side-shooter/internal/defs"
	"go-side-shooter/internal/logging"

	"go.uber.org/zap"
)

// Resources — всё, что нужно загрузить до первой сессии.
type Resources struct {
	Settings *config.Settings
	Enemies  *defs.EnemyLibrary
	Logger   *zap.Logger
}

// Bootstrap читает настройки и таблицу врагов. Отсутствующий файл
// заменяется значениями по умолчанию, испорченный возвращает ошибку.
func Bootstrap(configPath string) (*Resources, error) {
	settings := config.Defaults()
	configMissing := false
	if configPath != "" {
		loaded, err := config.Load(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			configMissing = true
		case err != nil:
			return nil, err
		default:
			settings = loaded
		}
	}

	log, err := logging.New(settings.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if configMissing {
		log.Warn("config file not found, using defaults", zap.String("path", configPath))
	}

	enemies, err := defs.LoadEnemyDefinitions(settings.EnemiesFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("enemy definitions not found, using built-in drone", zap.String("path", settings.EnemiesFile))
		enemies, err = defs.NewEnemyLibrary(defs.DefaultEnemies())
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		log.Info("enemy definitions loaded",
			zap.String("path", settings.EnemiesFile),
			zap.Int("count", enemies.Len()))
	}

	return &Resources{Settings: settings, Enemies: enemies, Logger: log}, nil
}
