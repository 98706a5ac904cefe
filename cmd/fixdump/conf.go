/* fixdump - dump and validate FIX tag=value messages
 *
 * Program configuration
 */

package main

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/fixwire/fixwire/internal/fixlog"
)

// ConfFileName is the name fixdump looks for in the current directory
// when -config is not given.
const ConfFileName = "fixdump.conf"

// Configuration represents fixdump's runtime configuration, loaded from
// an INI file via gopkg.in/ini.v1 rather than a hand-rolled parser.
type Configuration struct {
	LogConsole     fixlog.LogLevel // Console log level mask
	Groups         []string        // Catalog group names to resolve and report
	ValidateFrames bool            // Validate BodyLength/CheckSum on every message
}

// Conf holds the global, already-loaded configuration.
var Conf = Configuration{
	LogConsole:     fixlog.LogInfo | fixlog.LogError,
	ValidateFrames: true,
}

// ConfLoad loads configuration from path. If path is empty and
// ConfFileName does not exist, that is not an error: Conf keeps its
// defaults. A path that is given but cannot be loaded is an error.
func ConfLoad(path string) error {
	if path == "" {
		if _, err := os.Stat(ConfFileName); err != nil {
			return nil
		}
		path = ConfFileName
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("conf: %s", err)
	}

	sec := cfg.Section("fixdump")

	if sec.HasKey("groups") {
		Conf.Groups = sec.Key("groups").Strings(",")
	}

	if sec.HasKey("validate_frames") {
		Conf.ValidateFrames, err = sec.Key("validate_frames").Bool()
		if err != nil {
			return fmt.Errorf("conf: validate_frames: %s", err)
		}
	}

	if sec.HasKey("log_level") {
		Conf.LogConsole = 0
		for _, name := range sec.Key("log_level").Strings(",") {
			switch name {
			case "error":
				Conf.LogConsole |= fixlog.LogError
			case "info":
				Conf.LogConsole |= fixlog.LogInfo
			case "debug":
				Conf.LogConsole |= fixlog.LogDebug
			case "trace":
				Conf.LogConsole |= fixlog.LogTraceCodec
			default:
				return fmt.Errorf("conf: log_level: unknown level %q", name)
			}
		}
	}

	return nil
}
