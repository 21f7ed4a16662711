package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/growmate/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and saved settings",
	Long: `Deletes the debug log and the settings file (theme, reminders and
the other options saved from the TUI). Plants are never written to disk, so
there is nothing else to remove.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return runCleanWithReader(os.Stdin, cfg.Path())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, settingsPath string) error {
	logExists := fileExists(logger.DefaultLogPath)
	settingsExists := settingsPath != "" && fileExists(settingsPath)

	if !logExists && !settingsExists {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will remove:")
	if logExists {
		fmt.Printf("  - %s\n", logger.DefaultLogPath)
	}
	if settingsExists {
		fmt.Printf("  - %s\n", settingsPath)
	}

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	logRemoved, err := logger.ClearLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error removing log: %v\n", err)
	}

	settingsRemoved := false
	if settingsExists {
		if err := os.Remove(settingsPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: error removing settings: %v\n", err)
		} else {
			settingsRemoved = err == nil
		}
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	if logRemoved {
		fmt.Println("  - debug log removed")
	}
	if settingsRemoved {
		fmt.Println("  - settings removed")
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
