package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata, injected with -ldflags "-X main.version=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildSetting returns the value of a VCS build setting such as
// "vcs.revision", or "" when the binary carries no build info.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty value, or fallback.
func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}

func getVersion() string {
	var module string
	if info, ok := debug.ReadBuildInfo(); ok {
		module = info.Main.Version
	}
	return firstNonEmpty("(devel)", version, module)
}

// getCommit returns the short revision hash.
func getCommit() string {
	rev := firstNonEmpty("unknown", commit, buildSetting("vcs.revision"))
	if len(rev) > 7 && rev != "unknown" {
		return rev[:7]
	}
	return rev
}

func getDate() string {
	return firstNonEmpty("unknown", date, buildSetting("vcs.time"))
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "percolate %s (commit %s, built %s)\n", getVersion(), getCommit(), getDate())
		},
	}
}
