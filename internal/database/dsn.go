package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/tradepost/backend/internal/config"
)

// buildDSN renders a postgres:// connection string from config.
//
// The password is URL-encoded so special characters cannot break the URL
// structure, and host/port are joined with net.JoinHostPort so IPv6 hosts
// get their brackets.
func buildDSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}
