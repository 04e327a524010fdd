package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"resview/internal/bookmarks"
	"resview/internal/config"
	"resview/internal/scan"
	"resview/internal/service"
)

var (
	bookmarkFileFlag string
	verboseFlag      bool
	svc              *service.Service
)

// NewRootCmd creates the root command for the CLI. It takes a getService
// function responsible for building the service instance, so tests can
// point the bookmark store at a temporary file.
func NewRootCmd(getService func(bookmarkFile string) (*service.Service, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resview-cli",
		Short: "resview CLI - inspect image directories and bookmarks",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			svc, err = getService(bookmarkFileFlag)
			if err != nil {
				return fmt.Errorf("failed to initialize service: %w", err)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List the image files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "."
			if len(args) == 1 {
				raw = args[0]
			}
			_, files, ok := svc.OpenDirectory(raw)
			if !ok {
				cmd.Printf("%q is not a valid directory\n", raw)
				return nil
			}
			for _, f := range files {
				cmd.Println(f)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	statsCmd := &cobra.Command{
		Use:   "stats [directory]",
		Short: "Show aggregate image statistics for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "."
			if len(args) == 1 {
				raw = args[0]
			}
			_, files, ok := svc.OpenDirectory(raw)
			if !ok {
				cmd.Printf("%q is not a valid directory\n", raw)
			}
			sum := svc.Summary(files)
			cmd.Printf("Total images: %d\n", sum.Total)
			cmd.Printf("Total size:   %s\n", humanize.IBytes(sum.TotalSize))
			cmd.Println("Dimensions:")
			if !sum.HasDimensions() {
				cmd.Println("  N/A")
				return nil
			}
			for _, d := range sum.Histogram {
				cmd.Printf("  %s\n", d)
			}
			return nil
		},
	}
	rootCmd.AddCommand(statsCmd)

	bookmarksCmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Manage saved directory bookmarks",
	}

	bookmarksListCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range svc.Bookmarks.Load() {
				cmd.Println(p)
			}
			return nil
		},
	}
	bookmarksCmd.AddCommand(bookmarksListCmd)

	bookmarksAddCmd := &cobra.Command{
		Use:   "add [directory]",
		Short: "Save a directory bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := scan.ResolveDir(args[0])
			if !ok {
				cmd.Printf("%q is not a valid directory\n", args[0])
				return nil
			}
			_, added, err := svc.SaveBookmark(args[0])
			if err != nil {
				return err
			}
			if added {
				cmd.Printf("Saved %s\n", dir)
			} else {
				cmd.Printf("%s is already bookmarked\n", dir)
			}
			return nil
		},
	}
	bookmarksCmd.AddCommand(bookmarksAddCmd)

	bookmarksClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all saved bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			// An empty save is allowed; the next load falls back to the
			// default entry.
			return svc.Bookmarks.Save(nil)
		},
	}
	bookmarksCmd.AddCommand(bookmarksClearCmd)

	rootCmd.AddCommand(bookmarksCmd)

	rootCmd.PersistentFlags().StringVar(&bookmarkFileFlag, "bookmarks", "", "Path to bookmark file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func main() {
	getService := func(bookmarkFile string) (*service.Service, error) {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		if verboseFlag {
			log.SetLevel(logrus.DebugLevel)
		}
		if bookmarkFile == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			bookmarkFile = cfg.BookmarkFile
		}
		if err := os.MkdirAll(filepath.Dir(bookmarkFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create bookmark directory: %w", err)
		}
		return service.New(bookmarks.NewStore(bookmarkFile, log), log), nil
	}

	rootCmd := NewRootCmd(getService)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
