package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lifetime is a duration read from the environment. Besides Go duration
// strings ("90m", "24h") it accepts day counts ("7d") and bare seconds
// ("3600"), the formats token expiry values are usually written in.
type Lifetime time.Duration

func (l *Lifetime) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*l = 0
		return nil
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		*l = Lifetime(time.Duration(secs) * time.Second)
		return nil
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return fmt.Errorf("invalid day count %q", s)
		}
		*l = Lifetime(time.Duration(n) * 24 * time.Hour)
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*l = Lifetime(d)
	return nil
}

func (l Lifetime) Duration() time.Duration {
	return time.Duration(l)
}
