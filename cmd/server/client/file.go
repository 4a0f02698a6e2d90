package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
)

// templateFile is the on-disk layout for import-file and export-file. JSON
// files parse too since JSON is valid YAML.
type templateFile struct {
	Templates []fileTemplate `yaml:"templates"`
}

type fileTemplate struct {
	Name        string  `yaml:"name"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	AssetRef    string  `yaml:"asset_ref,omitempty"`
	Description string  `yaml:"description,omitempty"`
}

var importFileCmd = &cobra.Command{
	Use:   "import-file [path]",
	Short: "Merge templates from a yaml or json file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportFile,
}

var exportFileCmd = &cobra.Command{
	Use:   "export-file [path]",
	Short: "Write every template to a yaml file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportFile,
}

func readTemplateFile(path string) ([]*roomsv1alpha1.RoomTemplate, error) {
	data, err := os.ReadFile(path) // #nosec G304 path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("%s has no templates", path)
	}

	out := make([]*roomsv1alpha1.RoomTemplate, 0, len(file.Templates))
	for _, t := range file.Templates {
		out = append(out, &roomsv1alpha1.RoomTemplate{
			Name:        t.Name,
			Width:       t.Width,
			Height:      t.Height,
			AssetRef:    t.AssetRef,
			Description: t.Description,
		})
	}
	return out, nil
}

func writeTemplateFile(path string, templates []*roomsv1alpha1.RoomTemplate) error {
	file := templateFile{Templates: make([]fileTemplate, 0, len(templates))}
	for _, t := range templates {
		file.Templates = append(file.Templates, fileTemplate{
			Name:        t.Name,
			Width:       t.Width,
			Height:      t.Height,
			AssetRef:    t.AssetRef,
			Description: t.Description,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func runImportFile(_ *cobra.Command, args []string) error {
	templates, err := readTemplateFile(args[0])
	if err != nil {
		return err
	}

	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.ImportTemplates(ctx, &roomsv1alpha1.ImportTemplatesRequest{Templates: templates})
		if err != nil {
			return describe("import templates", err)
		}
		fmt.Printf("Imported %s: %d added, %d updated\n", args[0], len(resp.Added), len(resp.Updated))
		return nil
	})
}

func runExportFile(_ *cobra.Command, args []string) error {
	return call(func(ctx context.Context, client roomsv1alpha1.RoomServiceClient) error {
		resp, err := client.ListTemplates(ctx, &roomsv1alpha1.ListTemplatesRequest{})
		if err != nil {
			return describe("list templates", err)
		}
		if err := writeTemplateFile(args[0], resp.Templates); err != nil {
			return err
		}
		fmt.Printf("Exported %d template(s) to %s\n", len(resp.Templates), args[0])
		return nil
	})
}
