package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/the-dev-tools/organizer/internal/api"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwcodec"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwcompress"
	"github.com/the-dev-tools/organizer/internal/api/middleware/mwlog"
	"github.com/the-dev-tools/organizer/internal/api/rrecord"
)

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag(KeyServerAddr, serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the record API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg Config) error {
	svc, err := openServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	logger := slog.Default()
	options := []connect.HandlerOption{
		mwcodec.WithJSONCodec(),
		mwcompress.WithCompression(),
		connect.WithInterceptors(mwlog.NewInterceptor(logger)),
	}

	recordService, err := rrecord.CreateService(rrecord.New(svc.Records, logger), options)
	if err != nil {
		return fmt.Errorf("create record service: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.ListenServices(gctx, cfg.ServerAddr, []api.Service{*recordService})
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.InfoContext(gctx, "stopping", "cause", context.Cause(gctx))
		return nil
	})
	return g.Wait()
}
