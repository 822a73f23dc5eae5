package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/app-recommender/internal/db"
	"github.com/jonathan/app-recommender/internal/observability"
	"github.com/jonathan/app-recommender/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print a user's ranked apps",
	Long:  "Reads the active catalog and the user's onboarding answers from the database and prints the apps ranked for that user.",
	RunE:  runRecommend,
}

var (
	recommendUser    string
	recommendJSON    bool
	recommendTables  string
	recommendLimit   int
	recommendTimeout time.Duration
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendUser, "user", "u", "", "User ID (UUID) to rank apps for (required)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the ranking as JSON")
	recommendCmd.Flags().StringVarP(&recommendTables, "tables", "t", "", "Path to a scoring tables YAML file (overrides SCORING_TABLES_PATH)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Only print the top N apps (0 prints all)")
	recommendCmd.Flags().DurationVar(&recommendTimeout, "timeout", 30*time.Second, "Time allowed for the database reads")

	if err := recommendCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(recommendUser)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", recommendUser, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	tablesPath := cfg.ScoringTablesPath
	if recommendTables != "" {
		tablesPath = recommendTables
	}
	tables, err := resolveTables(tablesPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), recommendTimeout)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	engine := recommend.NewEngine(database, database, tables, logger)
	recs, err := engine.Recommend(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to compute recommendations: %w", err)
	}
	recs = recommend.Top(recs, recommendLimit)

	out := cmd.OutOrStdout()
	if recommendJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(recs); err != nil {
			return fmt.Errorf("failed to write recommendations: %w", err)
		}
		return nil
	}

	observability.NewPrinter(out).PrintRecommendations(userID.String(), recs)
	return nil
}

// resolveTables loads the override tables at path, or the built-in tables
// when path is empty.
func resolveTables(path string) (recommend.ScoreTables, error) {
	if path == "" {
		return recommend.DefaultTables(), nil
	}
	tables, err := recommend.LoadTables(path)
	if err != nil {
		return recommend.ScoreTables{}, fmt.Errorf("failed to load scoring tables: %w", err)
	}
	return tables, nil
}
