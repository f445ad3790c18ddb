package logger

import "go.uber.org/zap"

// Log доступен всему коду как синглтон, до инициализации ничего не пишет.
var Log = zap.NewNop()

// Initialize настраивает синглтон логера с необходимым уровнем логирования.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}
