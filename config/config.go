package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// terminal front end and for reproducing a game.
var (
	Seed     = getEnvInt64("SNAKE_SEED", 0)
	LogLevel = getEnvString("SNAKE_LOG_LEVEL", "info")

	CellWidth  = getEnvInt("SNAKE_CELL_WIDTH", 2)
	CellHeight = getEnvInt("SNAKE_CELL_HEIGHT", 1)
	MinColumns = getEnvInt("SNAKE_MIN_COLUMNS", 40)
	MinRows    = getEnvInt("SNAKE_MIN_ROWS", 20)
	HUDRows    = getEnvInt("SNAKE_HUD_ROWS", 3)

	// Key repeat on some terminals floods the input queue. Events beyond
	// this rate are dropped before they reach the session.
	InputRate      = rate.Limit(getEnvInt("SNAKE_INPUT_RPS", 60))
	InputBurstRate = getEnvInt("SNAKE_INPUT_BURST", 8)
)

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvInt64(varName string, defaults int64) int64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaults
	}
	return intVal
}
