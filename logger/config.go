package logger

import (
	"errors"
	"log"

	"github.com/joeshaw/envdecode"
)

type Conf struct {
	Level string `env:"POSTMCP_LOG_LEVEL,default=info"`
	JSON  bool   `env:"POSTMCP_LOG_JSON,default=false"`
}

func LogConfig() *Conf {
	configs := &Conf{Level: "info"}

	if err := envdecode.Decode(configs); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		log.Printf("failed to decode log config from environment: %s", err)
	}

	return configs
}

var logCfg = LogConfig()
