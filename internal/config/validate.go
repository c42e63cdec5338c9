package config

import (
	"errors"
	"fmt"
)

var validModes = map[string]struct{}{
	"fresh":  {},
	"rerun":  {},
	"resume": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRunLog(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if _, ok := validModes[c.Organize.Mode]; !ok {
		return fmt.Errorf("organize.mode must be one of fresh, rerun, resume (got %q)", c.Organize.Mode)
	}
	// Normalization clamps non-positive values, so anything left below the
	// minimum came from an explicit tiny setting.
	if c.Organize.ClientFolderMaxLength < 10 {
		return errors.New("organize.client_folder_max_length must be at least 10")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateRunLog() error {
	if c.RunLog.Enabled && c.RunLog.Path == "" {
		return errors.New("runlog.path must be set when runlog.enabled is true")
	}
	return nil
}
