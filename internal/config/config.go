// Package config resolves server settings from defaults, an optional TOML
// file, and environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

const (
	// DefaultPort is used when no valid port override is present.
	DefaultPort = 3000
	// DefaultHost is the interface the listener binds to by default.
	DefaultHost = "127.0.0.1"
	// PortVar is the environment variable consulted for the listen port.
	PortVar = "PORT"
)

// Config holds the resolved server settings.
type Config struct {
	// Host is the interface the listener binds to.
	Host string `toml:"host"`
	// Port is the TCP port the listener binds to.
	Port uint16 `toml:"port"`
	// Root is the directory files are served from.
	Root string `toml:"root"`
	// TypesFile optionally points at a YAML file with extra
	// suffix-to-content-type rules.
	TypesFile string `toml:"types_file"`
}

// Default returns the built-in settings: loopback on port 3000 serving the
// current working directory.
func Default() Config {
	return Config{
		Host: DefaultHost,
		Port: DefaultPort,
		Root: ".",
	}
}

// LoadFile overlays settings from a TOML file onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	return nil
}

// ApplyEnv applies the PORT environment override. An unset variable keeps
// the current port silently; a set value that does not parse as an unsigned
// 16-bit integer is ignored with a warning.
func (c *Config) ApplyEnv(logger log.Logger) {
	val, ok := os.LookupEnv(PortVar)
	if !ok {
		return
	}
	port, err := strconv.ParseUint(val, 10, 16)
	if err != nil {
		level.Warn(logger).Log(
			"msg", "ignoring invalid port override",
			"var", PortVar,
			"value", val,
		)
		return
	}
	c.Port = uint16(port)
}

// Addr returns the host:port address the server binds.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
