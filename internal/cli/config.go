// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/neuos/neuos-tui/internal/config"
)

// =============================================================================
// CONFIG HANDLER
// =============================================================================

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return configShow()
	case "set":
		return configSet(parser.Positional(1), parser.Positional(2))
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand %q (want show, set, or path)", parser.Subcommand())
	}
}

func configShow() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}

func configSet(key, value string) error {
	if key == "" || value == "" {
		return fmt.Errorf("usage: neuos config set KEY VALUE")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.particles":
		cfg.UI.Particles, err = parseBool(value)
	case "ui.glass":
		cfg.UI.Glass, err = parseBool(value)
	case "terminal.history_capacity":
		cfg.Terminal.HistoryCapacity, err = strconv.Atoi(value)
	case "terminal.queue_limit":
		cfg.Terminal.QueueLimit, err = strconv.Atoi(value)
	case "terminal.log_capacity":
		cfg.Terminal.LogCapacity, err = strconv.Atoi(value)
	case "terminal.hostname":
		cfg.Terminal.Hostname = value
	case "audio.volume":
		cfg.Audio.Volume, err = strconv.Atoi(value)
	case "audio.muted":
		cfg.Audio.Muted, err = parseBool(value)
	case "storage.state_path":
		cfg.Storage.StatePath = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %s", s)
}
