package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/ephemera/internal/platform/tui"
	"github.com/vovakirdan/ephemera/internal/storage"
)

var (
	flagPlayer      string
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best recorded runs and a summary of all runs.

Examples:
  ephemera scores
  ephemera scores --limit 25
  ephemera scores --player alice
  ephemera scores -i              # Interactive table`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

// scoreSummary describes the score distribution of a set of runs.
type scoreSummary struct {
	Runs   int
	Mean   float64
	StdDev float64
	Median float64
	Best   int
}

func summarize(runs []storage.Run) scoreSummary {
	if len(runs) == 0 {
		return scoreSummary{}
	}
	scores := make([]float64, len(runs))
	best := 0
	for i, r := range runs {
		scores[i] = float64(r.Score)
		best = max(best, r.Score)
	}
	sort.Float64s(scores)

	sum := scoreSummary{
		Runs:   len(runs),
		Mean:   stat.Mean(scores, nil),
		Median: stat.Quantile(0.5, stat.Empirical, scores, nil),
		Best:   best,
	}
	if len(scores) > 1 {
		sum.StdDev = stat.StdDev(scores, nil)
	}
	return sum
}

func runScores(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagPlayer, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs, all []storage.Run
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, 1000)
		all = runs
	} else {
		all, err = store.AllRuns()
		if err == nil {
			runs, err = store.TopRuns(flagLimit)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "Best runs"
	if flagPlayer != "" {
		title = fmt.Sprintf("Runs of %s", flagPlayer)
		sort.SliceStable(runs, func(i, j int) bool { return runs[i].Score > runs[j].Score })
	}
	if len(runs) > flagLimit && flagLimit > 0 {
		runs = runs[:flagLimit]
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ephemera play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %-10s  %-8s  %s\n", "Rank", "Player", "Score", "Lv", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-3s  %-10s  %-8s  %s\n", "----", "------", "-----", "--", "-------", "----", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-3d  %-10s  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Level, r.Outcome,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show distribution
	sum := summarize(all)
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Mean: %.1f  Median: %.0f  Std dev: %.1f\n",
		sum.Runs, sum.Best, sum.Mean, sum.Median, sum.StdDev)

	if flagPlayer == "" {
		if stats, err := store.Stats(); err == nil {
			fmt.Printf("Victories: %d  Best level: %d  Total time: %s\n",
				stats.Victories, stats.BestLevel, stats.TotalTime.Round(time.Second))
		}
	}
}
