package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
)

var (
	templateWidth       float64
	templateHeight      float64
	templateAssetRef    string
	templateDescription string
)

var addTemplateCmd = &cobra.Command{
	Use:     "add-template [name]",
	Short:   "Add a room template",
	Example: `  add-template crypt --width 6 --height 4 --asset-ref prefabs/crypt`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAddTemplate,
}

var getTemplateCmd = &cobra.Command{
	Use:   "get-template [name]",
	Short: "Show one room template",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetTemplate,
}

var listTemplatesCmd = &cobra.Command{
	Use:   "list-templates",
	Short: "List room templates in insertion order",
	Args:  cobra.NoArgs,
	RunE:  runListTemplates,
}

var updateTemplateCmd = &cobra.Command{
	Use:   "update-template [name]",
	Short: "Change the size, asset or description of a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateTemplate,
}

var removeTemplateCmd = &cobra.Command{
	Use:   "remove-template [name]",
	Short: "Remove a room template",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveTemplate,
}

func init() {
	for _, cmd := range []*cobra.Command{addTemplateCmd, updateTemplateCmd} {
		cmd.Flags().Float64Var(&templateWidth, "width", 0, "Room width")
		cmd.Flags().Float64Var(&templateHeight, "height", 0, "Room height")
		cmd.Flags().StringVar(&templateAssetRef, "asset-ref", "", "Asset reference")
		cmd.Flags().StringVar(&templateDescription, "description", "", "Description")
	}
	_ = addTemplateCmd.MarkFlagRequired("width")  // nolint:errcheck // safe to ignore in init
	_ = addTemplateCmd.MarkFlagRequired("height") // nolint:errcheck // safe to ignore in init
	updateTemplateCmd.MarkFlagsRequiredTogether("width", "height")
}

func runAddTemplate(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.AddTemplate(ctx, &roomsv1alpha1.AddTemplateRequest{
			Template: &roomsv1alpha1.RoomTemplate{
				Name:        args[0],
				Width:       templateWidth,
				Height:      templateHeight,
				AssetRef:    templateAssetRef,
				Description: templateDescription,
			},
		})
		if err != nil {
			return describe("add template", err)
		}

		fmt.Printf("Added ")
		printTemplate(resp.Template)
		return nil
	})
}

func runGetTemplate(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.GetTemplate(ctx, &roomsv1alpha1.GetTemplateRequest{Name: args[0]})
		if err != nil {
			return describe("get template", err)
		}
		printTemplate(resp.Template)
		return nil
	})
}

func runListTemplates(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.ListTemplates(ctx, &roomsv1alpha1.ListTemplatesRequest{})
		if err != nil {
			return describe("list templates", err)
		}

		if len(resp.Templates) == 0 {
			fmt.Println("No templates")
			return nil
		}
		for _, t := range resp.Templates {
			printTemplate(t)
		}
		fmt.Printf("\n%d template(s)\n", len(resp.Templates))
		return nil
	})
}

func runUpdateTemplate(cmd *cobra.Command, args []string) error {
	req := &roomsv1alpha1.UpdateTemplateRequest{Name: args[0]}
	if cmd.Flags().Changed("width") {
		req.Width = &templateWidth
		req.Height = &templateHeight
	}
	if cmd.Flags().Changed("asset-ref") {
		req.AssetRef = &templateAssetRef
	}
	if cmd.Flags().Changed("description") {
		req.Description = &templateDescription
	}

	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.UpdateTemplate(ctx, req)
		if err != nil {
			return describe("update template", err)
		}
		fmt.Printf("Updated ")
		printTemplate(resp.Template)
		return nil
	})
}

func runRemoveTemplate(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		if _, err := client.RemoveTemplate(ctx, &roomsv1alpha1.RemoveTemplateRequest{Name: args[0]}); err != nil {
			return describe("remove template", err)
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	})
}
