// Package gitinfo derives project metadata from a local Git checkout.
// Its main use is supplying a default value for the github.base_url
// property when the docs live inside a clone of a GitHub project.
package gitinfo

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// ProjectURL returns the HTTPS project URL of the origin remote of the
// repository containing dir, walking up parent directories to find the
// .git directory. Returns an error when dir is not inside a repository
// or the repository has no origin remote.
func ProjectURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return NormalizeRemote(urls[0]), nil
}

// NormalizeRemote converts common Git remote URL forms into a plain
// HTTPS project URL: scp-like SSH remotes (git@host:owner/repo.git)
// and ssh:// remotes become https://host/owner/repo, and a trailing
// .git suffix is dropped.
func NormalizeRemote(url string) string {
	url = strings.TrimSuffix(url, ".git")

	if rest, ok := strings.CutPrefix(url, "ssh://"); ok {
		if _, after, found := strings.Cut(rest, "@"); found {
			rest = after
		}
		return "https://" + rest
	}

	// scp-like: git@github.com:owner/repo
	if !strings.Contains(url, "://") {
		if _, after, found := strings.Cut(url, "@"); found {
			if host, path, ok := strings.Cut(after, ":"); ok {
				return "https://" + host + "/" + path
			}
		}
	}
	return url
}
