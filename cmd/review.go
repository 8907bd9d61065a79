/*
Copyright © 2023 sanix-darker <s4nixd@gmail.com>

The main review module that handle:
- review: given a unified diff (file or stdin), parse it into hunks and
  ask the configured provider for line-anchored comments and a summary.
*/

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/sanix-darker/crit/internal/config"
	"github.com/sanix-darker/crit/internal/logging"
	"github.com/sanix-darker/crit/internal/provider"
	"github.com/sanix-darker/crit/internal/renders"
	"github.com/sanix-darker/crit/internal/review"
	"github.com/spf13/cobra"
)

// NewReviewCmd: add a new review command
func NewReviewCmd(conf config.Config) *cobra.Command {
	var (
		model     string
		noSummary bool
		asJSON    bool
		copyOut   bool
		debug     bool
		minLength int
		include   []string
		exclude   []string
	)

	// reviewCmd represents the reviewCmd for the command
	reviewCmd := &cobra.Command{
		Use:     "review [diff-file]",
		Short:   "review a unified diff with the configured AI provider.",
		Example: "git diff origin/main | crit review\ncrit review changes.diff --json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diffText, err := readDiff(conf, args)
			if err != nil {
				return err
			}

			log := logging.New(conf.ErrWriter, conf.Debug || debug)

			p, err := provider.Get(conf.Provider, conf.ProviderSettings(conf.Provider), log)
			if err != nil {
				return err
			}

			if model == "" {
				model = conf.Model
			}
			client := review.NewClient(p, conf.Endpoint, conf.APIKey, model, log)
			orch := review.NewOrchestrator(client, log)

			spin := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(conf.ErrWriter))
			spin.Suffix = " reviewing changes..."
			spin.Start()

			result, err := orch.ReviewChanges(cmd.Context(), diffText, review.Options{
				GenerateSummary: conf.GenerateSummary && !noSummary,
			})
			spin.Stop()
			if err != nil {
				return err
			}

			result.Comments = review.FilterComments(result.Comments, review.Filters{
				MinLength:    minLength,
				IncludeFiles: include,
				ExcludeFiles: exclude,
			})
			result.Metadata.TotalComments = len(result.Comments)

			if asJSON {
				enc := json.NewEncoder(conf.OutWriter)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			doc := renders.BuildReviewDocument(result)
			fmt.Fprint(conf.OutWriter, renders.RenderMarkdown(doc))

			if copyOut {
				if err := clipboard.WriteAll(doc); err != nil {
					log.Warn().Err(err).Msg("could not copy review to clipboard")
				}
			}

			return nil
		},
	}

	reviewCmd.Flags().StringVarP(&model, "model", "m", "", "model to review with (defaults to the provider default)")
	reviewCmd.Flags().BoolVar(&noSummary, "no-summary", false, "skip the high level summary")
	reviewCmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw review result as json")
	reviewCmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the rendered review to the clipboard")
	reviewCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging on stderr")
	reviewCmd.Flags().IntVar(&minLength, "min-length", conf.Filters.MinLength, "drop comments shorter than this")
	reviewCmd.Flags().StringSliceVar(&include, "include", conf.Filters.IncludeFiles, "only keep comments on files matching these substrings")
	reviewCmd.Flags().StringSliceVar(&exclude, "exclude", conf.Filters.ExcludeFiles, "drop comments on files matching these substrings")

	return reviewCmd
}

// readDiff loads the diff from the file argument, or stdin when none is
// given.
func readDiff(conf config.Config, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("could not read diff file: %w", err)
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(conf.InReader)
	if err != nil {
		return "", fmt.Errorf("could not read diff from stdin: %w", err)
	}
	return string(raw), nil
}
