package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/openyaml"
	"github.com/the-dev-tools/organizer/pkg/service/srecord"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, zstd compressed when it ends in .zst (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [collection-id]",
	Short: "Export a collection as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		collectionID, err := idwrap.NewText(args[0])
		if err != nil {
			return fmt.Errorf("invalid collection id: %w", err)
		}

		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		svc, err := openServices(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		doc, err := exportCollection(ctx, svc.Records, collectionID)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = os.Stdout.Write(doc)
			return err
		}
		if err := openyaml.WriteFile(exportOutput, doc); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		slog.InfoContext(ctx, "collection exported", "collection", collectionID.String(), "output", exportOutput)
		return nil
	},
}

func exportCollection(ctx context.Context, rs *srecord.RecordService, collectionID idwrap.IDWrap) ([]byte, error) {
	trees, err := rs.GetByCollectionIDs(ctx, []idwrap.IDWrap{collectionID})
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	return openyaml.Export(collectionID, trees[collectionID])
}
