package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
)

var (
	addGenerated   bool
	applyProcessed bool
	collection     string
	snapshotTTL    time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a template from a prompt",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var syncEdgarCmd = &cobra.Command{
	Use:   "sync-edgar",
	Short: "Send every template to Edgar",
	Args:  cobra.NoArgs,
	RunE:  runSyncEdgar,
}

var pullEdgarCmd = &cobra.Command{
	Use:   "pull-edgar",
	Short: "Merge Edgar's processed templates",
	Args:  cobra.NoArgs,
	RunE:  runPullEdgar,
}

var saveSnapshotCmd = &cobra.Command{
	Use:   "save-snapshot",
	Short: "Store the registry under a collection name",
	Args:  cobra.NoArgs,
	RunE:  runSaveSnapshot,
}

var loadSnapshotCmd = &cobra.Command{
	Use:   "load-snapshot",
	Short: "Merge a stored collection into the registry",
	Args:  cobra.NoArgs,
	RunE:  runLoadSnapshot,
}

func init() {
	generateCmd.Flags().BoolVar(&addGenerated, "add", false, "Add the generated template to the registry")
	syncEdgarCmd.Flags().BoolVar(&applyProcessed, "apply", false, "Merge the processed templates Edgar returns")
	for _, cmd := range []*cobra.Command{saveSnapshotCmd, loadSnapshotCmd} {
		cmd.Flags().StringVar(&collection, "collection", "", "Collection name (server default when empty)")
	}
	saveSnapshotCmd.Flags().DurationVar(&snapshotTTL, "ttl", 0, "Expire the snapshot after this long (0 keeps it)")
}

func runGenerate(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.GenerateTemplate(ctx, &roomsv1alpha1.GenerateTemplateRequest{
			Prompt: args[0],
			Add:    addGenerated,
		})
		if err != nil {
			return describe("generate template", err)
		}

		printTemplate(resp.Template)
		if resp.Added {
			fmt.Println("Added to the registry")
		}
		return nil
	})
}

func runSyncEdgar(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.SyncToEdgar(ctx, &roomsv1alpha1.SyncToEdgarRequest{ApplyProcessed: applyProcessed})
		if err != nil {
			return describe("sync to edgar", err)
		}

		fmt.Printf("Sent %d template(s), %d processed\n", resp.Sent, len(resp.Processed))
		if len(resp.Skipped) > 0 {
			fmt.Printf("Skipped invalid: %v\n", resp.Skipped)
		}
		if applyProcessed {
			fmt.Printf("Applied: %d added, %d updated\n", len(resp.Added), len(resp.Updated))
		}
		return nil
	})
}

func runPullEdgar(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.PullFromEdgar(ctx, &roomsv1alpha1.PullFromEdgarRequest{})
		if err != nil {
			return describe("pull from edgar", err)
		}

		fmt.Printf("Pulled: %d added, %d updated\n", len(resp.Added), len(resp.Updated))
		if len(resp.Skipped) > 0 {
			fmt.Printf("Skipped invalid: %v\n", resp.Skipped)
		}
		return nil
	})
}

func runSaveSnapshot(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.SaveSnapshot(ctx, &roomsv1alpha1.SaveSnapshotRequest{
			Collection: collection,
			TTLSeconds: int64(snapshotTTL / time.Second),
		})
		if err != nil {
			return describe("save snapshot", err)
		}
		fmt.Printf("Saved %d template(s) to %s\n", resp.Count, resp.Collection)
		return nil
	})
}

func runLoadSnapshot(_ *cobra.Command, _ []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.LoadSnapshot(ctx, &roomsv1alpha1.LoadSnapshotRequest{Collection: collection})
		if err != nil {
			return describe("load snapshot", err)
		}
		fmt.Printf("Loaded %s (saved %s): %d added, %d updated\n",
			resp.Collection,
			time.Unix(resp.SavedAt, 0).Format(time.RFC3339),
			len(resp.Added),
			len(resp.Updated),
		)
		return nil
	})
}
