package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	if err := c.Market.validate(); err != nil {
		return err
	}
	if err := c.Risk.Validate(); err != nil {
		return err
	}
	return nil
}

func (m *MarketConfig) validate() error {
	if strings.TrimSpace(m.Name) != "binance" {
		return fmt.Errorf("market.name %q is not supported", m.Name)
	}
	for _, s := range m.Symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("market.symbols contains an empty symbol")
		}
	}
	if m.HistoryLimit > m.MaxCached {
		return fmt.Errorf("market.history_limit (%d) exceeds market.max_cached (%d)", m.HistoryLimit, m.MaxCached)
	}
	return nil
}
