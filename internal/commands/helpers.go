package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/auditlog"
	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/gitops"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// project bundles a resolved project directory with its config and open
// ledger store.
type project struct {
	dir   string
	cfg   *config.Config
	store *ledger.Store
}

// openProject resolves dir and opens its ledger. A missing pennywise.yaml
// falls back to defaults so the tool works in a bare directory.
func openProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}

	return &project{
		dir:   absDir,
		cfg:   cfg,
		store: ledger.Open(filepath.Join(absDir, cfg.Ledger.File)),
	}, nil
}

// recordMutation appends an audit entry and, when auto-commit is on, commits
// the ledger and audit log. Both are best-effort: the ledger operation
// already succeeded, so failures only warn.
func (p *project) recordMutation(user, action, details string) {
	if err := auditlog.Append(p.dir, auditlog.New(user, action, details)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}

	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.dir) {
		return
	}
	msg := fmt.Sprintf("ledger: %s %s", action, user)
	if _, err := gitops.Commit(p.dir, msg, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail, p.cfg.Ledger.File, "logs"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git auto-commit failed: %v\n", err)
	}
}

// authFlags are the flags shared by every command that operates on an
// existing account.
type authFlags struct {
	dir      string
	user     string
	password string
}

func (f *authFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&f.user, "user", "", "account username (required)")
	cmd.Flags().StringVar(&f.password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
}

// open resolves the project and authenticates the account.
func (f *authFlags) open() (*project, *model.Account, error) {
	p, err := openProject(f.dir)
	if err != nil {
		return nil, nil, err
	}
	acct, err := p.store.Authenticate(f.user, f.password)
	if err != nil {
		return nil, nil, err
	}
	return p, acct, nil
}
