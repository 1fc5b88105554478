package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/the-dev-tools/organizer/pkg/idwrap"
	"github.com/the-dev-tools/organizer/pkg/openyaml"
	"github.com/the-dev-tools/organizer/pkg/service/srecord"
	"github.com/the-dev-tools/organizer/pkg/translate/trecord"
)

var importCollectionID string

func init() {
	importCmd.Flags().StringVar(&importCollectionID, "collection", "", "target collection id (default: a new collection)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a YAML collection",
	Long: `Import a collection written by export. Files ending in .zst are read as
zstd compressed. Every item is stored under a new id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		collectionID := idwrap.NewNow()
		if importCollectionID != "" {
			parsed, err := idwrap.NewText(importCollectionID)
			if err != nil {
				return fmt.Errorf("invalid collection id: %w", err)
			}
			collectionID = parsed
		}

		data, err := openyaml.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
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

		n, err := importCollection(ctx, svc.Records, collectionID, data)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "collection imported", "collection", collectionID.String(), "records", n)
		fmt.Fprintln(cmd.OutOrStdout(), collectionID.String())
		return nil
	},
}

// importCollection creates the records of doc in document order and returns
// how many were stored. It stops at the first record that cannot be saved.
func importCollection(ctx context.Context, rs *srecord.RecordService, collectionID idwrap.IDWrap, doc []byte) (int, error) {
	dtos, err := openyaml.Import(doc, collectionID)
	if err != nil {
		return 0, err
	}

	for i, dto := range dtos {
		rec, err := trecord.FromDTO(dto)
		if err != nil {
			return i, fmt.Errorf("item %q: %w", dto.Name, err)
		}
		res, err := rs.Create(ctx, &rec)
		if err != nil {
			return i, fmt.Errorf("item %q: %w", dto.Name, err)
		}
		if !res.Success {
			return i, fmt.Errorf("item %q: %s", dto.Name, res.Message)
		}
	}
	return len(dtos), nil
}
