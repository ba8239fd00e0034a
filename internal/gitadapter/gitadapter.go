// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package gitadapter wraps github.com/go-git/go-git/v5 behind the
// narrow native-call contract the resolver and cache need: ls-remote,
// clone, ref resolution, checkout, and reading the HEAD branch name.
package gitadapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/ratelimit"
)

// limiter throttles outbound ls-remote and clone calls. Configure
// replaces it; the zero value (nil) is treated as "no throttling" so
// callers that never configure one (tests, one-off tooling) see no
// behavior change.
var limiter *ratelimit.Limiter

// Configure installs the rate limiter LsRemote and Clone wait on before
// touching the network. Called once at startup from the CLI layer with
// the value resolved from the effective configuration.
func Configure(l *ratelimit.Limiter) { limiter = l }

func throttle(ctx context.Context, url string) error {
	if limiter == nil || strings.HasPrefix(url, "file://") {
		return nil
	}
	return limiter.Wait(ctx)
}

// Repo is an opened git repository, either freshly cloned or reopened
// from an existing directory.
type Repo struct {
	path string
	repo *git.Repository
}

// Path returns the repository's working tree root.
func (r *Repo) Path() string { return r.path }

// LsRemote returns the 40-hex SHA that ref (default HEAD) currently
// points to on the remote, without performing a clone. Only meaningful
// for non-local URLs.
func LsRemote(ctx context.Context, url, ref string) (string, error) {
	if err := throttle(ctx, url); err != nil {
		return "", err
	}
	remote := git.NewRemote(nil, &config.RemoteConfig{Name: "origin", URLs: []string{url}})
	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: auth(url)})
	if err != nil {
		return "", apperrors.Newf(apperrors.CodeGitOperationFailed, "ls-remote %s failed: %v", url, err)
	}

	want := ref
	if want == "" {
		want = "HEAD"
	}
	for _, candidate := range []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(want),
		plumbing.NewTagReferenceName(want),
	} {
		for _, r := range refs {
			if r.Name() == candidate {
				return r.Hash().String(), nil
			}
		}
	}
	if want == "HEAD" {
		for _, r := range refs {
			if r.Name() == plumbing.HEAD {
				return r.Hash().String(), nil
			}
		}
	}
	// Fall back to an exact ref-name or short-SHA match.
	for _, r := range refs {
		if r.Name().Short() == want || r.Hash().String() == want {
			return r.Hash().String(), nil
		}
	}
	return "", apperrors.Newf(apperrors.CodeGitRefResolveFailed, "could not resolve ref %q on %s via ls-remote", want, url)
}

// Clone clones url into the empty directory dst. shallow requests a
// depth-1 clone; it is ignored for file:// URLs (already local). When
// the underlying transport rejects a file:// URL outright, Clone falls
// back to a recursive directory copy that still produces an openable
// repository, per the spec's file:// fallback contract.
func Clone(ctx context.Context, url, dst string, shallow bool) (*Repo, error) {
	if err := throttle(ctx, url); err != nil {
		return nil, err
	}
	opts := &git.CloneOptions{URL: url, Auth: auth(url)}
	if shallow && !strings.HasPrefix(url, "file://") {
		opts.Depth = 1
	}

	repo, err := git.PlainCloneContext(ctx, dst, false, opts)
	if err != nil {
		if strings.HasPrefix(url, "file://") {
			if fallbackErr := copyDirFallback(strings.TrimPrefix(url, "file://"), dst); fallbackErr == nil {
				repo, openErr := git.PlainOpen(dst)
				if openErr == nil {
					return &Repo{path: dst, repo: repo}, nil
				}
			}
		}
		return nil, apperrors.Newf(apperrors.CodeGitCloneFailed, "failed to clone %s: %v", url, err)
	}
	return &Repo{path: dst, repo: repo}, nil
}

// Open reopens an existing repository at path (e.g. a local-directory
// source that is itself a git checkout).
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodeGitOperationFailed, "failed to open repository at %s: %v", path, err)
	}
	return &Repo{path: path, repo: repo}, nil
}

// DiscoverRoot walks up from start looking for a .git directory and
// returns the repository's working tree root. The second return value is
// false when start is not inside a git repository.
func DiscoverRoot(start string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// RemoteOriginURL returns the "origin" remote's first configured URL for
// the repository at root, if one exists.
func RemoteOriginURL(root string) (string, bool) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", false
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", false
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", false
	}
	return urls[0], true
}

// ResolveRef resolves ref to a 40-hex SHA, probing branches, tags, the
// origin remote-tracking namespace, an OID prefix, and finally a
// general revision parse. An empty ref means HEAD.
func (r *Repo) ResolveRef(ref string) (string, error) {
	if ref == "" {
		head, err := r.repo.Head()
		if err != nil {
			return "", apperrors.Newf(apperrors.CodeGitRefResolveFailed, "failed to resolve HEAD: %v", err)
		}
		return head.Hash().String(), nil
	}

	candidates := []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(ref),
		plumbing.NewTagReferenceName(ref),
		plumbing.NewRemoteReferenceName("origin", ref),
	}
	for _, name := range candidates {
		if resolved, err := r.repo.Reference(name, true); err == nil {
			return resolved.Hash().String(), nil
		}
	}

	if h, err := r.repo.ResolveRevision(plumbing.Revision(ref)); err == nil {
		return h.String(), nil
	}

	return "", apperrors.Newf(apperrors.CodeGitRefResolveFailed, "failed to resolve ref %q", ref)
}

// Checkout sets a detached HEAD at sha and forcibly materializes the
// working tree to match.
func (r *Repo) Checkout(sha string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return apperrors.Newf(apperrors.CodeGitCheckoutFailed, "failed to open worktree: %v", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{
		Hash:  plumbing.NewHash(sha),
		Force: true,
	}); err != nil {
		return apperrors.Newf(apperrors.CodeGitCheckoutFailed, "failed to checkout %s: %v", sha, err)
	}
	return nil
}

// HeadBranchName returns the short branch name when HEAD is a normal
// branch, or "" when HEAD is detached.
func (r *Repo) HeadBranchName() string {
	head, err := r.repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}

func auth(url string) transport.AuthMethod {
	if strings.HasPrefix(url, "git@") || strings.HasPrefix(url, "ssh://") {
		if home, err := os.UserHomeDir(); err == nil {
			for _, name := range []string{"id_ed25519", "id_rsa"} {
				keyPath := filepath.Join(home, ".ssh", name)
				if _, statErr := os.Stat(keyPath); statErr == nil {
					if a, authErr := gitssh.NewPublicKeysFromFile("git", keyPath, ""); authErr == nil {
						return a
					}
				}
			}
		}
	}
	return nil
}

func copyDirFallback(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer in.Close()
		if mkErr := os.MkdirAll(filepath.Dir(target), 0o755); mkErr != nil {
			return mkErr
		}
		out, createErr := os.Create(target)
		if createErr != nil {
			return createErr
		}
		defer out.Close()
		_, copyErr := io.Copy(out, in)
		return copyErr
	})
}

// CurrentSHA returns the SHA that HEAD currently points to.
func (r *Repo) CurrentSHA() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	return head.Hash().String(), nil
}
