package edgar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/rpg-rooms/internal/clients/edgar"
	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	ctx     context.Context
	server  *httptest.Server
	handler http.HandlerFunc
	client  edgar.Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))

	client, err := edgar.New(&edgar.Config{
		BaseURL: s.server.URL + "/",
		Token:   "secret",
		Logger:  zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestSendTemplates() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/templates", r.URL.Path)
		s.Equal("Bearer secret", r.Header.Get("Authorization"))

		var body struct {
			Templates []*edgar.Template `json:"templates"`
		}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Require().Len(body.Templates, 1)
		s.Equal("hall", body.Templates[0].Name)
		s.Equal("prefabs/hall", body.Templates[0].Prefab)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(edgar.Response{
			Success:            true,
			ProcessedTemplates: body.Templates,
		})
	}

	tmpl := &entities.RoomTemplate{Name: "hall", Size: entities.Size{Width: 2, Height: 3}, AssetRef: "prefabs/hall"}
	resp, err := s.client.SendTemplates(s.ctx, []*edgar.Template{edgar.FromEntity(tmpl)})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Require().Len(resp.ProcessedTemplates, 1)
	s.Equal(edgar.Size{Width: 2, Height: 3}, resp.ProcessedTemplates[0].Size)
}

func (s *ClientTestSuite) TestSendTemplatesEmpty() {
	_, err := s.client.SendTemplates(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSendTemplatesRejected() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false}`))
	}

	_, err := s.client.SendTemplates(s.ctx, []*edgar.Template{{Name: "a"}})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *ClientTestSuite) TestFetchProcessedTemplates() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/templates/processed", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"processedTemplates":[
			{"name":"vault","size":{"width":4,"height":4},"description":"locked","prefab":"prefabs/vault"}
		]}`))
	}

	templates, err := s.client.FetchProcessedTemplates(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(templates, 1)

	tmpl, err := templates[0].ToEntity()
	s.Require().NoError(err)
	s.Equal("vault", tmpl.Name)
	s.Equal(entities.Size{Width: 4, Height: 4}, tmpl.Size)
	s.Equal("prefabs/vault", tmpl.AssetRef)
	s.Equal("locked", tmpl.Description)
}

func (s *ClientTestSuite) TestHTTPErrorsMapToCodes() {
	testCases := []struct {
		status int
		code   errors.Code
	}{
		{http.StatusUnauthorized, errors.CodeUnauthenticated},
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusBadRequest, errors.CodeInvalidArgument},
		{http.StatusServiceUnavailable, errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}

			_, err := s.client.FetchProcessedTemplates(s.ctx)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(tc.status, errors.GetMeta(err)["status_code"])
		})
	}
}

func (s *ClientTestSuite) TestUnreachable() {
	s.server.Close()

	_, err := s.client.FetchProcessedTemplates(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func TestConfigValidation(t *testing.T) {
	_, err := edgar.New(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for nil config, got %v", err)
	}

	_, err = edgar.New(&edgar.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for missing base url, got %v", err)
	}
}

func TestToEntityRejectsInvalid(t *testing.T) {
	_, err := (&edgar.Template{Name: "x", Size: edgar.Size{Width: 0, Height: 1}}).ToEntity()
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
