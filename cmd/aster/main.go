// The aster command searches for files with paths matching a glob
// pattern.
//
// Example:
//
//	$ aster '**/*_test.go'
//	compile_test.go
//	iterator_test.go
//	match_test.go
//	pattern_test.go
//	walker_test.go
//
// The explain subcommand prints the compiled form of a pattern: its
// segments with their hints, the derived flags, and the matching
// algorithm selected for it.
package main

import (
	"fmt"
	"os"

	"github.com/asterfs/aster"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log = logrus.New()

	hidden      bool
	symlinks    bool
	directories bool
	noFiles     bool
	verbose     bool
	startDir    string
)

var rootCmd = &cobra.Command{
	Use:           "aster <pattern>",
	Short:         "aster searches for files with paths matching a glob pattern",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: runWalk,
}

var explainCmd = &cobra.Command{
	Use:   "explain <pattern>",
	Short: "print the compiled form of a pattern",
	Args:  cobra.ExactArgs(1),
	Run:   runExplain,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&hidden, "hidden", false, "emit entries whose base name begins with a dot")
	rootCmd.Flags().BoolVar(&symlinks, "symlinks", false, "emit matching symlinks")
	rootCmd.Flags().BoolVar(&directories, "dirs", false, "emit matching directories")
	rootCmd.Flags().BoolVar(&noFiles, "no-files", false, "suppress regular file matches")
	rootCmd.Flags().StringVarP(&startDir, "cwd", "C", "", "directory to walk (default: working directory)")
	rootCmd.AddCommand(explainCmd)
}

func runWalk(_ *cobra.Command, args []string) error {
	pattern := aster.New(args[0])
	log.Debugf("compiled %q with the %s algorithm", pattern.View(), pattern.Algorithm())

	opts := []aster.WalkOption{
		aster.MatchFiles(!noFiles),
		aster.MatchHidden(hidden),
		aster.MatchSymlinks(symlinks),
		aster.MatchDirectories(directories),
		aster.WithErrorHandler(func(err error) { log.Warn(err) }),
	}
	if startDir != "" {
		opts = append(opts, aster.FromDirectory(startDir))
	}

	dirColor := color.New(color.FgBlue, color.Bold)
	linkColor := color.New(color.FgCyan)

	return aster.NewWalker(pattern).Walk(func(e aster.Entry) error {
		switch e.Type {
		case aster.Directory:
			dirColor.Println(e.Path)
		case aster.Symlink:
			linkColor.Println(e.Path)
		default:
			fmt.Println(e.Path)
		}
		return nil
	}, opts...)
}

func runExplain(_ *cobra.Command, args []string) {
	pattern := aster.New(args[0])

	heading := color.New(color.Bold)
	hint := color.New(color.FgYellow)

	heading.Printf("pattern  ")
	fmt.Printf("%q\n", pattern.View())
	heading.Printf("algorithm  ")
	fmt.Println(pattern.Algorithm())
	heading.Printf("flags  ")
	fmt.Printf("negated=%v globstar=%v absolute=%v exact=%v recursive=%v\n",
		pattern.Negated(), pattern.Globstar(), pattern.Absolute(), pattern.Exact(), pattern.Recursive())

	heading.Println("slices")
	for _, s := range pattern.Slices() {
		hint.Printf("  %-8s ", s.Hint())
		fmt.Printf("%q\n", s.View())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
