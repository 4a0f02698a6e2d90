package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
)

func TestParseItems(t *testing.T) {
	testCases := []struct {
		name    string
		specs   []string
		count   int
		want    []*roomsv1alpha1.Item
		wantErr bool
	}{
		{
			name:  "generated",
			count: 2,
			want: []*roomsv1alpha1.Item{
				{ID: "crate_1", Type: "crate"},
				{ID: "crate_2", Type: "crate"},
			},
		},
		{
			name:  "specs then generated",
			specs: []string{"altar:furniture", "torch"},
			count: 1,
			want: []*roomsv1alpha1.Item{
				{ID: "altar", Type: "furniture"},
				{ID: "torch", Type: "crate"},
				{ID: "crate_1", Type: "crate"},
			},
		},
		{name: "empty id", specs: []string{":furniture"}, wantErr: true},
		{name: "nothing", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseItems(tc.specs, tc.count, "crate")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTemplateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	templates := []*roomsv1alpha1.RoomTemplate{
		{Name: "crypt", Width: 6, Height: 4, AssetRef: "prefabs/crypt", Description: "cold", CreatedAt: 99},
		{Name: "hall", Width: 12.5, Height: 3},
	}

	require.NoError(t, writeTemplateFile(path, templates))

	got, err := readTemplateFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &roomsv1alpha1.RoomTemplate{Name: "crypt", Width: 6, Height: 4, AssetRef: "prefabs/crypt", Description: "cold"}, got[0])
	assert.Equal(t, 12.5, got[1].Width)
}

func TestReadTemplateFileAcceptsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"templates":[{"name":"vault","width":5,"height":5}]}`), 0o600))

	got, err := readTemplateFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "vault", got[0].Name)
}

func TestReadTemplateFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readTemplateFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("templates: []\n"), 0o600))
	_, err = readTemplateFile(empty)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("templates: [\n"), 0o600))
	_, err = readTemplateFile(broken)
	assert.Error(t, err)
}
