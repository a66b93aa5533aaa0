package cmd

import (
	"github.com/egytrade/tradedb/pkg/config"
	"github.com/spf13/cobra"
)

// flagOption turns an explicitly set flag into a config option.
type flagOption func(cmd *cobra.Command) (config.Option, bool)

func stringFlag(name string, opt func(string) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		s, _ := cmd.Flags().GetString(name)
		return opt(s), true
	}
}

func boolFlag(name string, opt func(bool) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		b, _ := cmd.Flags().GetBool(name)
		return opt(b), true
	}
}

func intFlag(name string, opt func(int) config.Option) flagOption {
	return func(cmd *cobra.Command) (config.Option, bool) {
		if !cmd.Flags().Changed(name) {
			return nil, false
		}
		i, _ := cmd.Flags().GetInt(name)
		return opt(i), true
	}
}

// flagOptions collects options of flags set on the command line, so
// flags override config.yaml and environment only when given.
func flagOptions(cmd *cobra.Command, flags ...flagOption) []config.Option {
	var res []config.Option
	for _, f := range flags {
		if opt, ok := f(cmd); ok {
			res = append(res, opt)
		}
	}
	return res
}
