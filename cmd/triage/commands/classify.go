// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-16

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/similigh/triage-bot/internal/core/config"
	"github.com/similigh/triage-bot/internal/triage"
)

var (
	severity   string
	workaround string
	bodyFile   string

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7300")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show the priority for a severity and workaround answer",
	Example: `  triage classify --severity "Most (> 50%)" --workaround "No and the platform is unusable"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLocalConfig()
		if err != nil {
			return err
		}
		printClassification(cmd.OutOrStdout(), cfg, severity, workaround)
		return nil
	},
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Show the answers and labels triage would derive from an issue body",
	Example: `  triage extract --body issue.md
  gh issue view 123 --json body -q .body | triage extract --body -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLocalConfig()
		if err != nil {
			return err
		}

		body, err := readBody(cmd.InOrStdin())
		if err != nil {
			return err
		}
		printExtraction(cmd.OutOrStdout(), cfg, body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(extractCmd)

	classifyCmd.Flags().StringVar(&severity, "severity", "", "Severity answer")
	classifyCmd.Flags().StringVar(&workaround, "workaround", "", "Available workarounds answer")

	extractCmd.Flags().StringVar(&bodyFile, "body", "-", "Issue body file, or - for stdin")
}

// loadLocalConfig loads the config file without remote inheritance.
func loadLocalConfig() (*config.Config, error) {
	path := config.FindConfigPath(cfgFile)
	if path == "" {
		if cfgFile != "" {
			return nil, fmt.Errorf("config file %s not found", cfgFile)
		}
		return config.Default(), nil
	}
	return config.Load(path)
}

func readBody(stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if bodyFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(bodyFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read issue body: %w", err)
	}
	return string(data), nil
}

func printClassification(w io.Writer, cfg *config.Config, severity, workaround string) {
	p := triage.ClassifyPriority(severity, workaround)
	label := cfg.Labels.LabelOptions().LabelFor(p)

	fmt.Fprintln(w, headerStyle.Render("Priority: "+p.String()))
	if label == "" {
		fmt.Fprintln(w, faintStyle.Render("no priority label"))
		return
	}
	fmt.Fprintln(w, labelStyle.Render(label))
}

func printExtraction(w io.Writer, cfg *config.Config, body string) {
	opts := cfg.Labels.LabelOptions()

	fmt.Fprintln(w, headerStyle.Render("Answers"))
	found := 0
	for answers := range triage.Scan(body) {
		found++
		p := triage.ClassifyPriority(answers.Severity, answers.Workaround)
		fmt.Fprintf(w, "%d. severity=%q workaround=%q %s\n", found, answers.Severity, answers.Workaround,
			faintStyle.Render("-> "+p.String()))
	}
	if found == 0 {
		fmt.Fprintln(w, faintStyle.Render("no severity/workaround sections found"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Labels"))
	for _, label := range triage.Labels(body, opts) {
		fmt.Fprintln(w, labelStyle.Render("- "+label))
	}
}
