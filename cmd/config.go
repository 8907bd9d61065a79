/*
Copyright © 2023 sanix-darker <s4nixd@gmail.com>

*/

package cmd

import (
	"fmt"

	"github.com/sanix-darker/crit/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd: add a new config command
func NewConfigCmd(conf config.Config) *cobra.Command {
	// configCmd represents the configCmd for the command
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "show the resolved configuration (secrets redacted).",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(conf.OutWriter, "provider    : %s\n", conf.Provider)
			fmt.Fprintf(conf.OutWriter, "endpoint    : %s\n", conf.Endpoint)
			fmt.Fprintf(conf.OutWriter, "api key     : %s\n", config.Redacted(conf.APIKey))
			fmt.Fprintf(conf.OutWriter, "model       : %s\n", orDefault(conf.Model, "(provider default)"))
			fmt.Fprintf(conf.OutWriter, "summary     : %t\n", conf.GenerateSummary)
			fmt.Fprintf(conf.OutWriter, "vcs platform: %s\n", conf.VCS.Platform)
			fmt.Fprintf(conf.OutWriter, "vcs token   : %s\n", config.Redacted(conf.VCS.Token))
			if conf.VCS.Project != "" {
				fmt.Fprintf(conf.OutWriter, "vcs project : %s\n", conf.VCS.Project)
			}
		},
	}

	return configCmd
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
