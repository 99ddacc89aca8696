package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seedpacket/pkg/assets"
)

// imagesCommand creates the images command for listing background images.
func (c *CLI) imagesCommand() *cobra.Command {
	var (
		imageDir string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "images",
		Short: "List the background images available to packets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImages(cmd.Context(), cmd, imageDir, asJSON)
		},
	}

	cmd.Flags().StringVar(&imageDir, "image-dir", "", "directory holding background images (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")

	return cmd
}

func (c *CLI) runImages(ctx context.Context, cmd *cobra.Command, imageDir string, asJSON bool) error {
	store := c.newStore(imageDir)
	if store == nil {
		return fmt.Errorf("no image directory; set image_dir in the config or pass --image-dir")
	}
	images, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	if asJSON {
		if images == nil {
			images = []assets.Info{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(images)
	}

	if len(images) == 0 {
		printInfo("No images found")
		return nil
	}
	for _, info := range images {
		printKeyValue(info.Name, formatBytes(int(info.Size))+"  "+StyleDim.Render(formatRelativeTime(info.ModTime)))
	}
	printNewline()
	printNextStep("Use one", "seedpacket render --image "+images[0].Name)
	return nil
}
