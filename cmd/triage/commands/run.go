// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/similigh/triage-bot/internal/core/config"
	"github.com/similigh/triage-bot/internal/core/dispatch"
	"github.com/similigh/triage-bot/internal/core/pipeline"
	"github.com/similigh/triage-bot/internal/integrations/actions"
	"github.com/similigh/triage-bot/internal/integrations/github"
)

var (
	eventFile string
	eventName string
	dryRun    bool
	useTUI    bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Triage the event that triggered the workflow",
	Long: `Triage the event that triggered the workflow.

Inside GitHub Actions the event is read from GITHUB_EVENT_NAME and
GITHUB_EVENT_PATH and the token from the github_token input. Locally, pass a
saved webhook payload with --event and set GITHUB_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTriage(cmd.Context(), actions.New(nil, nil))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&eventFile, "event", "", "Path to a webhook payload JSON file (local runs)")
	runCmd.Flags().StringVar(&eventName, "event-name", "issues", "Webhook event name for --event")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute labels without applying them")
	runCmd.Flags().BoolVar(&useTUI, "tui", false, "Show step progress in an interactive view")
}

func runTriage(ctx context.Context, rt *actions.Runtime) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt.Debugf("triage action is running")

	// 1. Credentials: nothing else happens without a token
	creds := rt.Credentials()
	if err := creds.Validate(); err != nil {
		rt.Errorf("%v", err)
		return err
	}

	// 2. Event
	name, payload, err := loadEvent(rt)
	if err != nil {
		rt.Errorf("%v", err)
		return err
	}
	issue, err := github.ParseEvent(name, payload)
	if err != nil {
		rt.Errorf("%v", err)
		return err
	}

	var opts []github.Option
	if api := rt.APIURL(); api != "" && api != github.DefaultAPIURL {
		opts = append(opts, github.WithBaseURL(api))
	}
	gh, err := github.NewClient(ctx, creds, opts...)
	if err != nil {
		rt.Errorf("%v", err)
		return err
	}

	// 3. Configuration
	cfg, err := loadConfig(ctx, rt, gh)
	if err != nil {
		rt.Errorf("%v", err)
		return err
	}

	deps := &pipeline.Dependencies{
		Tracker:      gh,
		Summary:      rt,
		DryRun:       dryRun || rt.DryRun(),
		BoardEnabled: creds.HasProjectsToken(),
	}
	if useTUI && !rt.InActions() {
		// The view prints the summary itself once the run ends.
		deps.Summary = nil
	}
	d := dispatch.New(cfg, deps)

	// 4. Dispatch
	var result *pipeline.Result
	if useTUI {
		result, err = runWithTUI(ctx, d, issue)
	} else {
		result, err = d.Dispatch(ctx, issue)
	}
	if err != nil {
		rt.Errorf("triage failed: %v", err)
		return err
	}

	if len(result.LabelsApplied) > 0 {
		rt.Noticef("Added labels to #%d: %s", result.IssueNumber, strings.Join(result.LabelsApplied, ", "))
	}
	return nil
}

// loadEvent reads the payload from --event or from the Actions runtime.
func loadEvent(rt *actions.Runtime) (string, []byte, error) {
	if eventFile == "" {
		return rt.Event()
	}

	data, err := os.ReadFile(eventFile)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return eventName, data, nil
}

// loadConfig finds and loads the config file, resolving extends through the GitHub API.
func loadConfig(ctx context.Context, rt *actions.Runtime, gh *github.Client) (*config.Config, error) {
	explicit := cfgFile
	if explicit == "" {
		explicit = rt.ConfigPath()
	}

	path := config.FindConfigPath(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("config file %s not found", explicit)
		}
		if verbose {
			log.Printf("No configuration file found. Using defaults.")
		}
		return config.Default(), nil
	}

	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, file, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}
		return gh.GetFileContent(ctx, org, repo, file, branch)
	}

	cfg, err := config.LoadWithInheritance(path, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if verbose {
		log.Printf("Loaded config from %s", path)
	}
	return cfg, nil
}
