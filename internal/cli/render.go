package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedpacket/pkg/assets"
	"github.com/matzehuels/seedpacket/pkg/packet"
	"github.com/matzehuels/seedpacket/pkg/pipeline"
	"github.com/matzehuels/seedpacket/pkg/render"
)

// timeNow is replaced in tests.
var timeNow = time.Now

// stdoutPath makes render write the PDF to standard output.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input        packet.Input // packet fields from --name, --date, --notes, --image
	output       string       // output file path, "-" for stdout
	imageDir     string       // overrides image_dir from the config file
	noCache      bool         // bypass the artifact cache entirely
	refresh      bool         // re-render and overwrite the cached artifact
	uncompressed bool         // write uncompressed content streams
	interactive  bool         // prompt for every field
	pickImage    bool         // choose the background image from a list
}

// renderCommand creates the render command for writing a packet PDF.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a seed packet template to PDF",
		Long: `Render a seed packet template to a single-page, letter-size PDF.

The seed name is printed as the title on the front panel, followed by the
date. Notes go on the back panel and are clipped to it. The background image
is looked up by file name in the image directory and stretched over the front
panel; a missing image is reported and skipped.

Rendered packets are cached locally, so repeating a request is instant.`,
		Example: `  seedpacket render --name Tomato --date 2024-05-01 --notes "Full sun."
  seedpacket render --name Basil --image basil.jpg --image-dir ~/Pictures/seeds
  seedpacket render --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input.SeedName, "name", "n", "", "seed name printed as the title (default \""+packet.DefaultSeedName+"\")")
	cmd.Flags().StringVarP(&opts.input.Date, "date", "d", "", "packing date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.input.Notes, "notes", "", "notes printed on the back panel")
	cmd.Flags().StringVarP(&opts.input.BackgroundImage, "image", "i", "", "background image file name inside the image directory")
	cmd.Flags().StringVarP(&opts.output, "output", "o", render.Filename, "output file, - for stdout")
	cmd.Flags().StringVar(&opts.imageDir, "image-dir", "", "directory holding background images (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached copy exists")
	cmd.Flags().BoolVar(&opts.uncompressed, "uncompressed", false, "write uncompressed PDF streams (for debugging)")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "prompt for every field")
	cmd.Flags().BoolVar(&opts.pickImage, "pick-image", false, "choose the background image from a list")
	cmd.MarkFlagsMutuallyExclusive("image", "pick-image")

	return cmd
}

// runRender collects the packet, renders it and writes the PDF.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, opts.noCache, opts.imageDir)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	in, err := c.collectInput(ctx, runner, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering packet...")
	spinner.Start()

	res, err := runner.Execute(ctx, pipeline.Options{
		Input:        in,
		Refresh:      opts.refresh,
		Uncompressed: opts.uncompressed,
		Now:          timeNow(),
		Logger:       logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if opts.output == stdoutPath {
		_, err := os.Stdout.Write(res.PDF)
		return err
	}
	if err := os.WriteFile(opts.output, res.PDF, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}
	prog.done("Wrote " + opts.output)

	if res.Packet.HasImage() && !res.ImageEmbedded {
		printWarning("Background image %s was skipped", res.Packet.BackgroundImage)
	}
	printSuccess("Rendered %s", StyleHighlight.Render(res.Packet.SeedName))
	printFile(opts.output)
	printRenderStats(res.Stats.Size, res.ImageEmbedded, res.CacheHit)
	logger.Debug("render finished", "id", res.ID, "layout", res.Stats.LayoutTime, "render", res.Stats.RenderTime)

	return nil
}

// collectInput applies the interactive prompt and image picker to the flag
// values.
func (c *CLI) collectInput(ctx context.Context, runner *pipeline.Runner, opts renderOpts) (packet.Input, error) {
	in := opts.input
	if !opts.interactive && !opts.pickImage {
		return in, nil
	}

	images, err := runner.Images(ctx)
	if err != nil {
		return in, fmt.Errorf("list images: %w", err)
	}

	if opts.pickImage {
		if len(images) == 0 {
			return in, fmt.Errorf("no images found; set image_dir in the config or pass --image-dir")
		}
		name, err := pickImage(ctx, images)
		if err != nil {
			return in, err
		}
		in.BackgroundImage = name
	}

	if opts.interactive {
		var names []string
		if !opts.pickImage {
			names = imageNames(images)
		}
		in, err = promptPacket(ctx, newSurveyPrompter(), in, names)
		if err != nil {
			return in, err
		}
	}
	return in, nil
}

func imageNames(images []assets.Info) []string {
	names := make([]string, len(images))
	for i, info := range images {
		names[i] = info.Name
	}
	return names
}
