package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"neon-casino/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	sinkMu sync.Mutex
	sink   io.Writer = os.Stdout
)

// Init configures the global zerolog logger from cfg. When cfg.File is set,
// output goes to a size-capped file instead of stdout.
func Init(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := io.Writer(os.Stdout)
	if cfg.File != "" {
		if w, werr := newCapFileWriter(cfg.File, cfg.MaxMB); werr == nil {
			out = w
		}
	}
	sinkMu.Lock()
	sink = out
	sinkMu.Unlock()

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(out).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the sink Init configured. Request logging writes its own
// JSON lines through this so HTTP and application logs land in one place.
func Writer() io.Writer {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return sink
}
