package gitops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Identity is the name and email recorded on commits.
type Identity struct {
	Name  string
	Email string
}

func (id Identity) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+id.Name,
		"GIT_AUTHOR_EMAIL="+id.Email,
		"GIT_COMMITTER_NAME="+id.Name,
		"GIT_COMMITTER_EMAIL="+id.Email,
	)
}

func run(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = env
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}

// Init initializes a new git repository at dir.
func Init(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, nil, "init", "--quiet")
	return err
}

// HasChanges reports whether the work tree differs from HEAD, including
// untracked files.
func HasChanges(ctx context.Context, dir string) (bool, error) {
	out, err := run(ctx, dir, nil, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitAll stages all files and creates a commit as id. Returns the short
// commit hash.
func CommitAll(ctx context.Context, dir, message string, id Identity) (string, error) {
	env := id.env()
	if _, err := run(ctx, dir, env, "add", "-A"); err != nil {
		return "", err
	}
	if _, err := run(ctx, dir, env, "commit", "--quiet", "-m", message); err != nil {
		return "", err
	}
	out, err := run(ctx, dir, nil, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
