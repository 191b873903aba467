package server

import (
	"time"
)

const DefaultAddr = "localhost:9090"

type Conf struct {
	Addr            string
	TimeoutRead     time.Duration
	TimeoutWrite    time.Duration
	TimeoutIdle     time.Duration
	TimeoutShutdown time.Duration
}

func ServerConfigs(addr string) *Conf {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Conf{
		Addr:            addr,
		TimeoutRead:     time.Second * 30,
		TimeoutWrite:    time.Second * 90,
		TimeoutIdle:     time.Second * 30,
		TimeoutShutdown: time.Second * 10,
	}
}
