package internal

import (
	"chat-gateway/errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	TransportUDP       = "udp"
	TransportWebsocket = "websocket"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	NodeAddress     string        `env:"NODE_ADDRESS,required=true"`
	Transport       string        `env:"TRANSPORT,default=udp"`
	Host            string        `env:"HOST,default=localhost"`
	Port            int           `env:"PORT,default=5001"`
	WsPath          string        `env:"WS_PATH,default=/chat"`
	HealthPort      int           `env:"HEALTH_PORT,default=5002"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,default=1m"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ApiVersion      uint32        `env:"API_VERSION,default=3"`
}

func (c Config) Validate() error {
	switch c.Transport {
	case TransportUDP, TransportWebsocket:
	default:
		return fmt.Errorf("%w: TRANSPORT must be %s or %s, got %q",
			errors.ErrUnknownTransport, TransportUDP, TransportWebsocket, c.Transport)
	}
	if c.ApiVersion == 0 {
		return fmt.Errorf("%w: API_VERSION must be positive", errors.ErrInvalidArgument)
	}
	if c.StatsInterval <= 0 || c.RestartInterval <= 0 {
		return fmt.Errorf("%w: STATS_INTERVAL and RESTART_INTERVAL must be positive", errors.ErrInvalidArgument)
	}
	return nil
}

func (c Config) ListenAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) HealthAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.HealthPort))
}
