package config

import "fmt"

// Validate checks the settings file for errors: a parseable defaultMode and
// splitAxis, and non-negative gap/padding values.
func (c *Config) Validate() error {
	return validateSettings(&c.Settings)
}

func validateSettings(s *Settings) error {
	if _, err := parseMode(s.DefaultMode); err != nil {
		return err
	}
	if _, _, err := s.SplitAxisOverride(); err != nil {
		return err
	}
	if s.Gap < 0 {
		return fmt.Errorf("gap cannot be negative")
	}
	if s.PaddingTop < 0 || s.PaddingLeft < 0 || s.PaddingRight < 0 || s.PaddingBottom < 0 {
		return fmt.Errorf("padding cannot be negative")
	}
	return nil
}
