package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/get-convex/cla-gate/internal/config"
	"github.com/get-convex/cla-gate/internal/models"
	"github.com/get-convex/cla-gate/internal/service"
	"github.com/get-convex/cla-gate/internal/ui"
	"github.com/spf13/cobra"
)

var version = "dev"

// errGateFailed is returned when the gate rejects the pull request; the
// reason has already been printed.
var errGateFailed = errors.New("CLA check failed")

type options struct {
	org    string
	apiURL string
	ghAuth bool
}

// environment abstracts the process inputs so the command can be tested
type environment struct {
	lookup      config.LookupFunc
	tokenSource config.TokenSource
	out         io.Writer
}

func runCommand(ctx context.Context, env environment, opts options) error {
	cfg := config.Load(env.lookup)
	if opts.apiURL != "" {
		cfg.APIURL = opts.apiURL
	}

	reporter := &ui.DefaultReporter{Out: env.out}

	checker := &lazyChecker{cfg: cfg, reporter: reporter}
	if opts.ghAuth {
		checker.source = env.tokenSource
	}

	gate := service.NewGateService(checker, reporter, opts.org)
	if outcome := gate.Run(ctx, cfg.PullRequest()); outcome.ExitCode() != 0 {
		return errGateFailed
	}
	return nil
}

func newRootCmd(env environment) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "cla-gate",
		Short:   "Check that a pull request description acknowledges the CLA",
		Long:    "Reads PR_DESCRIPTION, PR_AUTHOR and GITHUB_TOKEN from the environment. Members of the organization are exempt; everyone else must include the CLA text in the PR description.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), env, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&opts.org, "org", models.Organization, "organization whose members skip the CLA check")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub REST API base URL (default $GITHUB_API_URL or https://api.github.com/)")
	cmd.Flags().BoolVar(&opts.ghAuth, "gh-auth", false, "use the gh CLI token when GITHUB_TOKEN is unset")
	cmd.SetOut(env.out)

	return cmd
}

func main() {
	cmd := newRootCmd(environment{
		lookup:      os.LookupEnv,
		tokenSource: auth.TokenForHost,
		out:         os.Stdout,
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errGateFailed) {
			fmt.Fprintln(os.Stdout, err)
		}
		os.Exit(1)
	}
}
