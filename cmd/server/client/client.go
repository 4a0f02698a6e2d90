// Package client provides commands that call the rooms gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the rooms service",
	Long:  `Client commands make real gRPC requests against a running rooms server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Template commands
	ClientCmd.AddCommand(addTemplateCmd)
	ClientCmd.AddCommand(getTemplateCmd)
	ClientCmd.AddCommand(listTemplatesCmd)
	ClientCmd.AddCommand(updateTemplateCmd)
	ClientCmd.AddCommand(removeTemplateCmd)
	ClientCmd.AddCommand(importFileCmd)
	ClientCmd.AddCommand(exportFileCmd)
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(syncEdgarCmd)
	ClientCmd.AddCommand(pullEdgarCmd)
	ClientCmd.AddCommand(saveSnapshotCmd)
	ClientCmd.AddCommand(loadSnapshotCmd)

	// Placement commands
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(placeCmd)
	ClientCmd.AddCommand(placeAtCmd)
	ClientCmd.AddCommand(placementsCmd)
	ClientCmd.AddCommand(clearCmd)
	ClientCmd.AddCommand(deleteSessionCmd)
}

// createRoomClient connects to the server
func createRoomClient() (roomsv1alpha1.RoomServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return roomsv1alpha1.NewRoomServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and the request timeout
func call(fn func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error) error {
	client, cleanup, err := createRoomClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

// describe turns a status error back into the service's error text
func describe(op string, err error) error {
	converted := errors.FromGRPCError(err)
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		return fmt.Errorf("failed to %s: %w %v", op, converted, meta)
	}
	return fmt.Errorf("failed to %s: %w", op, converted)
}

func printTemplate(t *roomsv1alpha1.RoomTemplate) {
	fmt.Printf("%s (%gx%g)\n", t.Name, t.Width, t.Height)
	if t.AssetRef != "" {
		fmt.Printf("  Asset: %s\n", t.AssetRef)
	}
	if t.Description != "" {
		fmt.Printf("  Description: %s\n", t.Description)
	}
	if t.UpdatedAt != 0 {
		fmt.Printf("  Updated: %s\n", time.Unix(t.UpdatedAt, 0).Format(time.RFC3339))
	}
}

func printPlacement(p *roomsv1alpha1.Placement) {
	fmt.Printf("  %s [%s] at (%g, %g)", p.ItemID, p.ItemType, p.Position.X, p.Position.Y)
	if p.InstanceID != "" {
		fmt.Printf(" instance %s", p.InstanceID)
	}
	fmt.Println()
}
