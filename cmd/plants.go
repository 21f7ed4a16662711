package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zhubert/growmate/internal/plant"
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "List the plants GrowMate would start with",
	Long: `Prints the starting plant list as a table: the built-in examples, or the
plants in the seed file given by --seed or seed_file in the config.

Useful for checking a seed file before opening the TUI.`,
	Args: cobra.NoArgs,
	RunE: runPlants,
}

func init() {
	rootCmd.AddCommand(plantsCmd)
}

func runPlants(cmd *cobra.Command, args []string) error {
	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	now := time.Now()
	seed, err := loadSeed(cfg, now)
	if err != nil {
		return err
	}

	writePlantTable(cmd.OutOrStdout(), seed, now, cfg.GetThirstyAfterDays())
	return nil
}

// Column widths for the plants table
const (
	colID      = 10
	colName    = 20
	colType    = 12
	colAge     = 8
	colWatered = 12
)

// writePlantTable prints one row per plant. IDs are shortened since
// generated ones are UUIDs.
func writePlantTable(w io.Writer, plants []plant.Plant, now time.Time, thirstyDays int) {
	if len(plants) == 0 {
		fmt.Fprintln(w, "No plants.")
		return
	}

	row := func(id, name, kind, age, watered, note string) {
		fmt.Fprintf(w, "%s %s %s %s %s %s\n",
			pad(id, colID), pad(name, colName), pad(kind, colType),
			pad(age, colAge), pad(watered, colWatered), note)
	}

	row("ID", "NAME", "TYPE", "AGE", "WATERED", "")
	for _, p := range plants {
		watered := p.LastWateredString()
		if watered == "" {
			watered = "never"
		}
		note := ""
		if p.NeedsWater(now, thirstyDays) {
			note = "needs water"
		}
		row(p.ID, p.Name, p.Type.Label(), strconv.Itoa(p.AgeMonths)+"mo", watered, note)
	}
}

func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
