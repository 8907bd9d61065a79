/*
Copyright © 2023 sanix-darker <s4nixd@gmail.com>

*/

package cmd

import (
	"fmt"
	"os"

	"github.com/sanix-darker/crit/internal/cmd/version"
	"github.com/sanix-darker/crit/internal/config"
	"github.com/spf13/cobra"

	// posters and providers register themselves on import.
	_ "github.com/sanix-darker/crit/internal/provider/openai"
	_ "github.com/sanix-darker/crit/internal/vcs/github"
	_ "github.com/sanix-darker/crit/internal/vcs/gitlab"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "crit",
	Short:         "A CodeReviewer cli friend for your diffs.",
	Long:          `Get AI code reviews for unified diffs, render them in the terminal or post them on a pull/merge request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	conf, err := config.Load(version.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(
		NewReviewCmd(conf),
		NewPostCmd(conf),
		NewConfigCmd(conf),
		NewManCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
