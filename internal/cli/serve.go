package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedpacket/pkg/server"
)

// serveCommand creates the serve command for running the web form.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		imageDir string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the seed packet form over HTTP",
		Long: `Serve the seed packet form over HTTP.

GET / shows a form; submitting it downloads SeedPacket.pdf. POST /packet
also accepts JSON, and GET /api/images lists the background images.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, imageDir, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+server.DefaultAddr+")")
	cmd.Flags().StringVar(&imageDir, "image-dir", "", "directory holding background images (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, imageDir string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache, imageDir)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	cfg := c.Config.serverConfig()
	if addr != "" {
		cfg.Addr = addr
	}

	if runner.Assets == nil {
		printWarning("No image directory configured; background images are disabled")
	}
	printInfo("Serving on %s", StyleLink.Render("http://"+displayAddr(cfg.Addr)))

	srv := server.New(runner, server.WithLogger(logger), server.WithClock(timeNow))
	start := time.Now()
	if err := srv.ListenAndServe(ctx, cfg); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	printSuccess("Server stopped after %s", time.Since(start).Round(time.Second))
	return nil
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
