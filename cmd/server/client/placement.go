package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
)

var (
	sessionTemplate string
	regionWidth     float64
	regionHeight    float64
	minDistance     float64
	maxAttempts     int
	seed            uint64
	gridSteps       int

	itemType  string
	itemCount int
	itemSpecs []string

	itemID string
	posX   float64
	posY   float64
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a placement session over a template or a region",
	Long: `Start a placement session. Use --template to place inside a registered
template's footprint, or --width and --height for a region anchored at (0, 0).`,
	Example: `  create-session --template crypt --min-distance 2 --seed 42
  create-session --width 10 --height 10 --min-distance 5`,
	Args: cobra.NoArgs,
	RunE: runCreateSession,
}

var placeCmd = &cobra.Command{
	Use:   "place [session-id]",
	Short: "Place a batch of items",
	Example: `  place sess_123 --type crate --count 3
  place sess_123 --item altar:furniture --item torch_1:light`,
	Args: cobra.ExactArgs(1),
	RunE: runPlace,
}

var placeAtCmd = &cobra.Command{
	Use:   "place-at [session-id]",
	Short: "Place one item at a chosen position",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceAt,
}

var placementsCmd = &cobra.Command{
	Use:   "placements [session-id]",
	Short: "Show a session's placements",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlacements,
}

var clearCmd = &cobra.Command{
	Use:   "clear [session-id]",
	Short: "Clear every placement in a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

var deleteSessionCmd = &cobra.Command{
	Use:   "delete-session [session-id]",
	Short: "Clear and forget a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteSession,
}

func init() {
	createSessionCmd.Flags().StringVar(&sessionTemplate, "template", "", "Template whose footprint bounds the session")
	createSessionCmd.Flags().Float64Var(&regionWidth, "width", 0, "Region width")
	createSessionCmd.Flags().Float64Var(&regionHeight, "height", 0, "Region height")
	createSessionCmd.Flags().Float64Var(&minDistance, "min-distance", 0, "Minimum distance between placements")
	createSessionCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Samples per item (server default when 0)")
	createSessionCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed")
	createSessionCmd.Flags().IntVar(&gridSteps, "grid-steps", 0, "Snap to a dice-driven grid with this many steps")
	createSessionCmd.MarkFlagsRequiredTogether("width", "height")
	createSessionCmd.MarkFlagsMutuallyExclusive("template", "width")
	createSessionCmd.MarkFlagsOneRequired("template", "width")

	placeCmd.Flags().StringVar(&itemType, "type", "item", "Type for generated items")
	placeCmd.Flags().IntVar(&itemCount, "count", 0, "Number of generated items")
	placeCmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "Item as id:type (repeatable)")
	placeCmd.MarkFlagsOneRequired("count", "item")

	placeAtCmd.Flags().StringVar(&itemID, "id", "", "Item ID (required)")
	placeAtCmd.Flags().StringVar(&itemType, "type", "item", "Item type")
	placeAtCmd.Flags().Float64Var(&posX, "x", 0, "X coordinate")
	placeAtCmd.Flags().Float64Var(&posY, "y", 0, "Y coordinate")
	_ = placeAtCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

// parseItems builds the batch from --item specs followed by --count
// generated items.
func parseItems(specs []string, count int, defaultType string) ([]*roomsv1alpha1.Item, error) {
	items := make([]*roomsv1alpha1.Item, 0, len(specs)+count)
	for _, spec := range specs {
		id, typ, found := strings.Cut(spec, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid item %q, want id:type", spec)
		}
		if !found || strings.TrimSpace(typ) == "" {
			typ = defaultType
		}
		items = append(items, &roomsv1alpha1.Item{ID: id, Type: strings.TrimSpace(typ)})
	}
	for i := 1; i <= count; i++ {
		items = append(items, &roomsv1alpha1.Item{ID: fmt.Sprintf("%s_%d", defaultType, i), Type: defaultType})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to place")
	}
	return items, nil
}

func runCreateSession(cmd *cobra.Command, _ []string) error {
	req := &roomsv1alpha1.CreateSessionRequest{
		TemplateName: sessionTemplate,
		MaxAttempts:  maxAttempts,
		GridSteps:    gridSteps,
	}
	if sessionTemplate == "" {
		req.Region = &roomsv1alpha1.Region{MaxX: regionWidth, MaxY: regionHeight}
	}
	if cmd.Flags().Changed("min-distance") {
		req.MinimumDistance = &minDistance
	}
	if cmd.Flags().Changed("seed") {
		req.Seed = &seed
	}

	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.CreateSession(ctx, req)
		if err != nil {
			return describe("create session", err)
		}

		s := resp.Session
		fmt.Printf("Session %s\n", s.ID)
		fmt.Printf("  Region: [%g, %g] x [%g, %g]\n", s.Region.MinX, s.Region.MaxX, s.Region.MinY, s.Region.MaxY)
		fmt.Printf("  Minimum distance: %g\n", s.MinimumDistance)
		fmt.Printf("  Max attempts: %d\n", s.MaxAttempts)
		if s.GridSteps > 0 {
			fmt.Printf("  Grid steps: %d\n", s.GridSteps)
		} else {
			fmt.Printf("  Seed: %d\n", s.Seed)
		}
		return nil
	})
}

func runPlace(_ *cobra.Command, args []string) error {
	items, err := parseItems(itemSpecs, itemCount, itemType)
	if err != nil {
		return err
	}

	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.PlaceAssets(ctx, &roomsv1alpha1.PlaceAssetsRequest{
			SessionID: args[0],
			Items:     items,
		})
		if err != nil {
			return describe("place assets", err)
		}

		fmt.Printf("Placed %d of %d item(s)\n", len(resp.Placed), len(items))
		for _, p := range resp.Placed {
			printPlacement(p)
		}
		for _, f := range resp.Failed {
			fmt.Printf("  %s failed: %s", f.ItemID, f.Reason)
			if f.Error != "" {
				fmt.Printf(" (%s)", f.Error)
			}
			fmt.Println()
		}
		return nil
	})
}

func runPlaceAt(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.PlaceSingle(ctx, &roomsv1alpha1.PlaceSingleRequest{
			SessionID: args[0],
			Item:      &roomsv1alpha1.Item{ID: itemID, Type: itemType},
			Position:  &roomsv1alpha1.Position{X: posX, Y: posY},
		})
		if err != nil {
			return describe("place item", err)
		}
		fmt.Println("Placed")
		printPlacement(resp.Placement)
		return nil
	})
}

func runPlacements(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.GetPlacements(ctx, &roomsv1alpha1.GetPlacementsRequest{SessionID: args[0]})
		if err != nil {
			return describe("get placements", err)
		}
		fmt.Printf("Session %s is %s with %d placement(s)\n", args[0], resp.State, len(resp.Placements))
		for _, p := range resp.Placements {
			printPlacement(p)
		}
		return nil
	})
}

func runClear(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.ClearPlacements(ctx, &roomsv1alpha1.ClearPlacementsRequest{SessionID: args[0]})
		if err != nil {
			return describe("clear placements", err)
		}
		fmt.Printf("Cleared %d placement(s)\n", resp.Cleared)
		return nil
	})
}

func runDeleteSession(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		if _, err := client.DeleteSession(ctx, &roomsv1alpha1.DeleteSessionRequest{SessionID: args[0]}); err != nil {
			return describe("delete session", err)
		}
		fmt.Printf("Deleted session %s\n", args[0])
		return nil
	})
}
