/*
Copyright © 2023 sanix-darker <s4nixd@gmail.com>

*/

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sanix-darker/crit/internal/config"
	"github.com/sanix-darker/crit/internal/logging"
	"github.com/sanix-darker/crit/internal/printers"
	"github.com/sanix-darker/crit/internal/review"
	"github.com/sanix-darker/crit/internal/vcs"
	"github.com/sanix-darker/crit/internal/vcs/gitmeta"
	"github.com/spf13/cobra"
)

// NewPostCmd: add a new post command
func NewPostCmd(conf config.Config) *cobra.Command {
	var (
		platform string
		project  string
		number   int
		baseURL  string
		repoPath string
		headSHA  string
		baseSHA  string
		startSHA string
		yes      bool
		debug    bool
	)

	// postCmd represents the postCmd for the command
	postCmd := &cobra.Command{
		Use:     "post [review-file]",
		Short:   "post a saved review (crit review --json) on a pull/merge request.",
		Example: "crit review --json > review.json\ncrit post review.json --project owner/repo --number 42",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(conf.ErrWriter, conf.Debug || debug)

			result, err := readResult(conf, args)
			if err != nil {
				return err
			}

			if project == "" || headSHA == "" {
				info, err := gitmeta.Discover(repoPath)
				if err != nil {
					log.Debug().Err(err).Msg("no git repository metadata available")
				} else {
					if project == "" {
						project = info.Project
					}
					if headSHA == "" {
						headSHA = info.HeadSHA
					}
				}
			}
			if project == "" {
				return fmt.Errorf("no project given and none could be discovered, use --project owner/repo")
			}
			if number == 0 {
				return fmt.Errorf("no pull/merge request number given, use --number")
			}

			poster, err := vcs.Get(platform, conf.VCS.Token, baseURL)
			if err != nil {
				return err
			}
			if err := poster.Validate(); err != nil {
				return err
			}

			if !yes {
				question := fmt.Sprintf(
					"Post %d comment(s) on %s (%s #%d)?",
					len(result.Comments), poster.Info().Name, project, number,
				)
				if !printers.NewPrinters().Confirm(question) {
					fmt.Fprintln(conf.OutWriter, "aborted.")
					return nil
				}
			}

			refs := vcs.DiffRefs{BaseSHA: baseSHA, HeadSHA: headSHA, StartSHA: startSHA}

			if result.Summary != nil {
				if err := poster.PostSummaryNote(project, number, *result.Summary); err != nil {
					log.Warn().Err(err).Msg("could not post the summary note")
				}
			}

			posted := 0
			for _, comment := range result.Comments {
				inline := vcs.InlineComment{
					Path: comment.Filename,
					Line: comment.Line,
					Body: comment.Body,
				}
				if err := poster.PostInlineComment(project, number, refs, inline); err != nil {
					log.Warn().Err(err).
						Str("file", comment.Filename).
						Int("line", comment.Line).
						Msg("could not post inline comment")
					continue
				}
				posted++
			}

			fmt.Fprintf(conf.OutWriter, "posted %d/%d comment(s) on %s #%d\n",
				posted, len(result.Comments), project, number)
			if posted < len(result.Comments) {
				return fmt.Errorf("%d comment(s) failed to post", len(result.Comments)-posted)
			}
			return nil
		},
	}

	postCmd.Flags().StringVar(&platform, "platform", conf.VCS.Platform, "code host to post on (github, gitlab)")
	postCmd.Flags().StringVar(&project, "project", conf.VCS.Project, "project path, e.g. owner/repo")
	postCmd.Flags().IntVarP(&number, "number", "n", conf.VCS.Number, "pull/merge request number")
	postCmd.Flags().StringVar(&baseURL, "base-url", conf.VCS.BaseURL, "api base url for self-hosted instances")
	postCmd.Flags().StringVarP(&repoPath, "repo", "r", ".", "local git repo used to discover project and head sha")
	postCmd.Flags().StringVar(&headSHA, "head-sha", "", "head commit sha of the request")
	postCmd.Flags().StringVar(&baseSHA, "base-sha", "", "base commit sha of the request (gitlab inline comments)")
	postCmd.Flags().StringVar(&startSHA, "start-sha", "", "start commit sha of the request (gitlab inline comments)")
	postCmd.Flags().BoolVarP(&yes, "yes", "y", false, "post without asking for confirmation")
	postCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging on stderr")

	return postCmd
}

// readResult loads a review result previously produced by `crit review
// --json`, from the file argument or stdin.
func readResult(conf config.Config, args []string) (*review.ReviewResult, error) {
	var raw []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(conf.InReader)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read review result: %w", err)
	}

	var result review.ReviewResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("not a valid review result: %w", err)
	}
	return &result, nil
}
