package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adrian-wojcik/viadot/internal/frame"
	"github.com/adrian-wojcik/viadot/internal/task"
)

var sharepointCmd = &cobra.Command{
	Use:   "sharepoint",
	Short: "Fetch files and spreadsheets from the document platform",
}

var (
	sharepointConfigKey  string
	sharepointSecretName string
	sharepointSheets     []string
	sharepointIfEmpty    string
	sharepointOutput     string
	sharepointToPath     string
)

var sharepointToFileCmd = &cobra.Command{
	Use:   "to-file [url]",
	Short: "Load a spreadsheet into a table and write it to CSV or parquet",
	Args:  cobra.ExactArgs(1),
	RunE:  runSharepointToFile,
}

var sharepointDownloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download one exact file to a local path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSharepointDownload,
}

func init() {
	sharepointCmd.PersistentFlags().StringVar(&sharepointConfigKey, "config-key", "sharepoint", "config key holding the credentials")
	sharepointCmd.PersistentFlags().StringVar(&sharepointSecretName, "secret", "", "secret name holding the credentials")

	sharepointToFileCmd.Flags().StringSliceVar(&sharepointSheets, "sheet", nil, "sheet name(s) to parse; default all sheets")
	sharepointToFileCmd.Flags().StringVar(&sharepointIfEmpty, "if-empty", "warn", "empty-result policy (warn, fail, skip)")
	sharepointToFileCmd.Flags().StringVarP(&sharepointOutput, "output", "o", "", "output path (.csv or .parquet)")
	_ = sharepointToFileCmd.MarkFlagRequired("output")

	sharepointDownloadCmd.Flags().StringVar(&sharepointToPath, "to-path", "", "local destination path")
	_ = sharepointDownloadCmd.MarkFlagRequired("to-path")

	sharepointCmd.AddCommand(sharepointToFileCmd)
	sharepointCmd.AddCommand(sharepointDownloadCmd)
}

func runSharepointToFile(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	df, err := task.SharepointToDF(cmd.Context(), task.SharepointOptions{
		URL:        args[0],
		Sheets:     sharepointSheets,
		IfEmpty:    frame.IfEmpty(sharepointIfEmpty),
		ConfigKey:  sharepointConfigKey,
		SecretName: sharepointSecretName,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if _, err := frame.FormatForPath(sharepointOutput); err != nil {
		return err
	}
	if err := df.WriteFile(sharepointOutput, ','); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sharepointOutput)
	return nil
}

func runSharepointDownload(cmd *cobra.Command, args []string) error {
	return task.SharepointDownloadFile(cmd.Context(), task.SharepointDownloadOptions{
		URL:        args[0],
		ToPath:     sharepointToPath,
		ConfigKey:  sharepointConfigKey,
		SecretName: sharepointSecretName,
		Logger:     newLogger(),
	})
}
