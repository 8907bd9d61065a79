// Package gitmeta discovers posting metadata from a local git repository:
// the project path derived from the origin remote and the HEAD commit SHA
// used as the inline-comment anchor. It never computes or reads diffs.
package gitmeta

import (
	"fmt"
	"strings"

	git "gopkg.in/src-d/go-git.v4"
)

// RepoInfo holds what `crit post` can infer from the repository itself.
type RepoInfo struct {
	// Project is the "owner/repo" path parsed from the origin remote.
	Project string
	// HeadSHA is the current HEAD commit.
	HeadSHA string
}

// Discover opens the repository at path and extracts posting metadata.
func Discover(path string) (*RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("gitmeta: failed to open repository at %s: %w", path, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, fmt.Errorf("gitmeta: no origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("gitmeta: origin remote has no URL")
	}

	project, err := ProjectFromRemoteURL(urls[0])
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("gitmeta: failed to resolve HEAD: %w", err)
	}

	return &RepoInfo{
		Project: project,
		HeadSHA: head.Hash().String(),
	}, nil
}

// ProjectFromRemoteURL extracts the "owner/repo" path from an https or ssh
// remote URL, dropping a trailing ".git".
func ProjectFromRemoteURL(url string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(url), ".git")

	// ssh form: git@host:owner/repo
	if at := strings.Index(trimmed, "@"); at >= 0 && !strings.Contains(trimmed, "://") {
		if colon := strings.Index(trimmed, ":"); colon >= 0 {
			path := strings.Trim(trimmed[colon+1:], "/")
			if path != "" {
				return path, nil
			}
		}
		return "", fmt.Errorf("gitmeta: cannot parse ssh remote %q", url)
	}

	// https form: scheme://host/owner/repo
	if idx := strings.Index(trimmed, "://"); idx >= 0 {
		rest := trimmed[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			path := strings.Trim(rest[slash+1:], "/")
			if path != "" {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("gitmeta: cannot parse remote %q", url)
}
