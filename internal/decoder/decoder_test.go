package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/rpg-rooms/internal/decoder"
	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

type DecoderTestSuite struct {
	suite.Suite
	decoder *decoder.Decoder
}

func TestDecoderSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}

func (s *DecoderTestSuite) SetupTest() {
	s.decoder = decoder.New(&decoder.Config{
		Policy: decoder.DenyList("forbidden", "  "),
		Logger: zaptest.NewLogger(s.T()),
	})
}

func (s *DecoderTestSuite) TestDecodeObjectSize() {
	t, ok := s.decoder.Decode(`{"name":"Throne Room","size":{"width":12,"height":8},"description":"gilded","prefab":"prefabs/throne"}`)
	s.Require().True(ok)
	s.Equal("Throne Room", t.Name)
	s.Equal(entities.Size{Width: 12, Height: 8}, t.Size)
	s.Equal("gilded", t.Description)
	s.Equal("prefabs/throne", t.AssetRef)
}

func (s *DecoderTestSuite) TestDecodeStringSize() {
	t, ok := s.decoder.Decode(`{"name":"Cellar","size":"6 x 4.5","description":"damp"}`)
	s.Require().True(ok)
	s.Equal(entities.Size{Width: 6, Height: 4.5}, t.Size)
	s.Empty(t.AssetRef)
}

func (s *DecoderTestSuite) TestDecodeStripsMarkupAndChatter() {
	text := "Here you go:\n```json\n<p>{\"name\":\" <b>Armory</b> \",\"size\":{\"width\":3,\"height\":3}}</p>\n```\nEnjoy!"
	t, ok := s.decoder.Decode(text)
	s.Require().True(ok)
	s.Equal("Armory", t.Name)
}

func (s *DecoderTestSuite) TestDecodeRejections() {
	testCases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only markup", "<div></div>"},
		{"prohibited", `{"name":"FORBIDDEN vault","size":{"width":1,"height":1}}`},
		{"not json", "a cozy room"},
		{"missing name", `{"size":{"width":1,"height":1}}`},
		{"zero size", `{"name":"flat","size":{"width":0,"height":1}}`},
		{"negative size", `{"name":"flat","size":"3x-1"}`},
		{"bad size string", `{"name":"flat","size":"big"}`},
		{"bad size type", `{"name":"flat","size":[1,2]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t, ok := s.decoder.Decode(tc.text)
			s.False(ok)
			s.Nil(t)

			_, err := s.decoder.DecodeTemplate(tc.text)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestAllowAllDefault(t *testing.T) {
	d := decoder.New(nil)
	tmpl, ok := d.Decode(`{"name":"forbidden","size":{"width":1,"height":1}}`)
	require.True(t, ok)
	assert.Equal(t, "forbidden", tmpl.Name)
}

func TestPolicyFunc(t *testing.T) {
	short := decoder.PolicyFunc(func(text string) bool { return len(text) < 80 })
	d := decoder.New(&decoder.Config{Policy: short})

	_, ok := d.Decode(`{"name":"a","size":{"width":1,"height":1}}`)
	assert.True(t, ok)

	_, ok = d.Decode(`{"name":"a","size":{"width":1,"height":1},"description":"this description is far too long for the policy"}`)
	assert.False(t, ok)
}

func TestParseSize(t *testing.T) {
	testCases := []struct {
		in      string
		want    decoder.Size
		wantErr bool
	}{
		{in: "10x8", want: decoder.Size{Width: 10, Height: 8}},
		{in: " 2.5 X 3 ", want: decoder.Size{Width: 2.5, Height: 3}},
		{in: "7×7", want: decoder.Size{Width: 7, Height: 7}},
		{in: "10", wantErr: true},
		{in: "axb", wantErr: true},
		{in: "1x2x3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := decoder.ParseSize(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
