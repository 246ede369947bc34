package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// L: logger da aplicação. Saída JSON com timestamp; LOG_PRETTY=1 troca para
// o console writer em desenvolvimento.
var L zerolog.Logger

func init() {
	if os.Getenv("LOG_PRETTY") != "" {
		L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return
	}
	L = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
