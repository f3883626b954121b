package main

import (
	"github.com/spf13/cobra"
)

// buildCmd runs the interactive builder once
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a custom dork from guided prompts",
	Long: `Asks one question per search operator, composes the answers into a
single dork and displays it. Press enter to skip any question.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return ignoreEOF(s.RunBuild())
}
