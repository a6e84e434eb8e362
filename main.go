package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"booking-insights/config"
	"booking-insights/dataset"
	"booking-insights/models"
	"booking-insights/services"
	"booking-insights/storage"
	"booking-insights/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking-insights",
		Short: "Analyze a hotel booking dataset and rank hotel locations by value",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			debug, _ := cmd.Flags().GetBool("debug")
			return run(input, debug)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("input", "", "Path to the booking dataset (overrides DATASET_PATH)")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}

func run(input string, debug bool) error {
	logger := utils.NewLogger()
	logger.SetDebug(debug)

	cfg := config.Load()
	if input != "" {
		cfg.DatasetPath = input
	}

	logger.Info("=== Hotel Booking Insights starting ===")
	logger.Info("Config: dataset=%s | top rows=%d | bottom rows=%d", cfg.DatasetPath, cfg.TopRows, cfg.BottomRows)

	reader := dataset.NewReader(cfg.DatasetPath, logger)
	lines, err := reader.Lines()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		logger.Warn("Dataset %s has no data lines. Nothing to analyze.", cfg.DatasetPath)
		return nil
	}

	parser := services.NewParser(logger)
	bookings := parser.Parse(lines)
	if len(bookings) == 0 {
		logger.Warn("All %d lines were dropped during parsing. Nothing to analyze.", len(lines))
		return nil
	}

	aggregator := services.NewAggregator(logger)
	groups := aggregator.Aggregate(bookings)
	if len(groups) == 0 {
		logger.Warn("No hotel groups could be formed. Nothing to analyze.")
		return nil
	}

	scorer := services.NewScorer(logger)
	scores, rng := scorer.Score(groups)

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(bookings, groups, scores, rng, parser.Dropped())

	services.PrintReport(report, cfg.TopRows, cfg.BottomRows)

	exportScores(cfg, logger, report)

	logger.Info("Done. %d bookings in %d hotel locations analyzed.", report.TotalRecords, report.GroupCount)
	return nil
}

// exportScores sends the ranked results to the optional sinks, each on its
// own worker. Export failures are logged but never abort the run; the
// console report has already been printed.
func exportScores(cfg *config.Config, logger *utils.Logger, report *models.InsightReport) {
	pool := utils.NewWorkerPool(2)

	if cfg.ExportCSVPath != "" {
		pool.Submit(func() {
			writeScores(logger, "CSV", cfg.ExportCSVPath, report, func() (storage.ScoreWriter, error) {
				return storage.NewCSVWriter(cfg.ExportCSVPath)
			})
		})
	}

	if cfg.ArchiveEnabled {
		pool.Submit(func() {
			writeScores(logger, "PostgreSQL", cfg.PostgresDB, report, func() (storage.ScoreWriter, error) {
				return storage.NewPostgresWriter(cfg.DSN(), logger)
			})
		})
	}

	pool.Wait()
}

func writeScores(logger *utils.Logger, name, target string, report *models.InsightReport, open func() (storage.ScoreWriter, error)) {
	w, err := open()
	if err != nil {
		logger.Error("%s export unavailable: %v", name, err)
		return
	}
	defer w.Close()

	if err := w.WriteScores(report.Ranked); err != nil {
		logger.Error("%s export failed: %v", name, err)
		return
	}
	logger.Info("Scores exported to %s (%s)", name, target)
}
