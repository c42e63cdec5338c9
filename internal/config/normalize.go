package config

import "strings"

// normalize expands paths and canonicalizes values before validation.
func (c *Config) normalize() error {
	var err error
	if c.Paths.SourceDir, err = expandOptional(c.Paths.SourceDir); err != nil {
		return err
	}
	if c.Paths.TargetDir, err = expandOptional(c.Paths.TargetDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandOptional(c.Paths.LogDir); err != nil {
		return err
	}
	if c.RunLog.Path, err = expandOptional(c.RunLog.Path); err != nil {
		return err
	}

	c.Organize.Mode = strings.ToLower(strings.TrimSpace(c.Organize.Mode))
	if c.Organize.Mode == "" {
		c.Organize.Mode = defaultMode
	}
	if c.Organize.ClientFolderMaxLength <= 0 {
		c.Organize.ClientFolderMaxLength = defaultClientFolderMaxLength
	}
	if c.Organize.ClientOverrides == nil {
		c.Organize.ClientOverrides = map[string]bool{}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}

func expandOptional(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	return expandPath(path)
}
