package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Totarae/shortenbot/internal/config"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		ServerAddress:  "localhost:8080",
		RetryMax:       3,
		RetryWait:      time.Second,
		RequestTimeout: 10 * time.Second,
	}

	srv := newServer(cfg, nil)

	assert.Equal(t, "localhost:8080", srv.Addr)
	// 4 попытки по 10с и паузы 1+2+4с укладываются в WriteTimeout
	assert.GreaterOrEqual(t, srv.WriteTimeout, 47*time.Second)
}
