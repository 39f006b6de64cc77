package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/quill/internal/config"
)

// ConfigCmd returns the `quill config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit ~/.quill/config",
	}
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configSetCmd())
	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path())
			return nil
		},
	}
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadOrDefault()
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Default().Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadOrDefault()
			if err != nil {
				return err
			}
			if err := setField(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// LoadOrDefault loads the config file, falling back to defaults when there
// is none. Any other load error is returned.
func LoadOrDefault() (*config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func setField(cfg *config.Config, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "theme":
		cfg.Theme = strings.ToLower(value)
	case "id_scheme":
		cfg.IDScheme = strings.ToLower(value)
	case "log_level":
		cfg.LogLevel = strings.ToLower(value)
	case "log_file":
		cfg.LogFile = value
	case "vim_keys", "confirm_delete":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s wants true or false, got %q", config.ErrInvalid, key, value)
		}
		if key == "vim_keys" {
			cfg.VimKeys = b
		} else {
			cfg.ConfirmDelete = b
		}
	case "preview_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: preview_width wants a number, got %q", config.ErrInvalid, value)
		}
		cfg.PreviewWidth = n
	default:
		return fmt.Errorf("%w: unknown key %q", config.ErrInvalid, key)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
