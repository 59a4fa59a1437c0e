package cli

import (
	"github.com/spf13/cobra"

	"github.com/adrian-wojcik/viadot/internal/task"
)

var lakeCmd = &cobra.Command{
	Use:   "lake",
	Short: "Upload produced artifacts to the object-store lake",
}

var (
	lakeConfigKey  string
	lakeSecretName string
	lakeToPath     string
	lakeOverwrite  bool
)

var lakeUploadCmd = &cobra.Command{
	Use:   "upload [from-path]",
	Short: "Upload one local file to the configured bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runLakeUpload,
}

func init() {
	lakeUploadCmd.Flags().StringVar(&lakeConfigKey, "config-key", "lake", "config key holding the credentials")
	lakeUploadCmd.Flags().StringVar(&lakeSecretName, "secret", "", "secret name holding the credentials")
	lakeUploadCmd.Flags().StringVar(&lakeToPath, "to-path", "", "destination object key")
	lakeUploadCmd.Flags().BoolVar(&lakeOverwrite, "overwrite", false, "replace an existing object")
	_ = lakeUploadCmd.MarkFlagRequired("to-path")
	lakeCmd.AddCommand(lakeUploadCmd)
}

func runLakeUpload(cmd *cobra.Command, args []string) error {
	return task.LakeUpload(cmd.Context(), task.LakeUploadOptions{
		FromPath:   args[0],
		ToPath:     lakeToPath,
		Overwrite:  lakeOverwrite,
		ConfigKey:  lakeConfigKey,
		SecretName: lakeSecretName,
		Logger:     newLogger(),
	})
}
