package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adrian-wojcik/viadot/internal/connector/mindful"
	"github.com/adrian-wojcik/viadot/internal/task"
)

var mindfulCmd = &cobra.Command{
	Use:   "mindful",
	Short: "Fetch data from the Mindful feedback platform",
}

var (
	mindfulConfigKey  string
	mindfulSecretName string
	mindfulRegion     string
	mindfulEndpoint   string
	mindfulStart      string
	mindfulEnd        string
	mindfulLimit      int
	mindfulOutput     string
	mindfulSep        string
)

var mindfulFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download records and write them to a CSV or parquet file",
	RunE:  runMindfulFetch,
}

func init() {
	mindfulFetchCmd.Flags().StringVar(&mindfulConfigKey, "config-key", "mindful", "config key holding the credentials")
	mindfulFetchCmd.Flags().StringVar(&mindfulSecretName, "secret", "", "secret name holding the credentials")
	mindfulFetchCmd.Flags().StringVar(&mindfulRegion, "region", "eu1", "regional deployment (us1, us2, us3, ca1, eu1, au1)")
	mindfulFetchCmd.Flags().StringVar(&mindfulEndpoint, "endpoint", "", "API endpoint (interactions, responses, surveys)")
	mindfulFetchCmd.Flags().StringVar(&mindfulStart, "start", "", "interval start (RFC3339); with --end overrides the trailing-24h default")
	mindfulFetchCmd.Flags().StringVar(&mindfulEnd, "end", "", "interval end (RFC3339)")
	mindfulFetchCmd.Flags().IntVar(&mindfulLimit, "limit", mindful.DefaultLimit, "number of matching records to return")
	mindfulFetchCmd.Flags().StringVarP(&mindfulOutput, "output", "o", "", "output path (.csv or .parquet); default timestamped CSV")
	mindfulFetchCmd.Flags().StringVar(&mindfulSep, "sep", "\t", "CSV field separator")
	mindfulCmd.AddCommand(mindfulFetchCmd)
}

func runMindfulFetch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	interval, err := parseInterval(mindfulStart, mindfulEnd)
	if err != nil {
		return err
	}

	df, err := task.MindfulToDF(cmd.Context(), task.MindfulOptions{
		ConfigKey:    mindfulConfigKey,
		SecretName:   mindfulSecretName,
		Region:       mindfulRegion,
		Endpoint:     mindfulEndpoint,
		DateInterval: interval,
		Limit:        mindfulLimit,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	sep := '\t'
	if mindfulSep != "" {
		sep = []rune(mindfulSep)[0]
	}
	path, err := task.MindfulToFile(df, mindfulOutput, sep, logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// parseInterval builds a date interval from optional RFC3339 bounds; both
// must be given together.
func parseInterval(start, end string) (*mindful.DateInterval, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("--start and --end must be given together")
	}
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, fmt.Errorf("parse --start: %w", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, fmt.Errorf("parse --end: %w", err)
	}
	return &mindful.DateInterval{Start: s, End: e}, nil
}
