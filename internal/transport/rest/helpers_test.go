package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ricmershon/dwellio-sub005/internal/domain"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
	"github.com/ricmershon/dwellio-sub005/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubUsers struct{ users []domain.User }

func (s stubUsers) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	return s.users, nil
}

type stubProperties struct{ props []domain.Property }

func (s stubProperties) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.Property, error) {
	return s.props, nil
}

// newRequest builds a request with per-request loaders attached. users and
// props back the owner and listing lookups.
func newRequest(method, target string, body any, users []domain.User, props []domain.Property) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	r := httptest.NewRequest(method, target, &buf)
	loaders := dataloader.NewLoaders(&dataloader.Repos{
		User:     stubUsers{users: users},
		Property: stubProperties{props: props},
	})
	return r.WithContext(dataloader.WithLoaders(r.Context(), loaders))
}

func asUser(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(ctxutil.WithUserID(r.Context(), id))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func ptr[T any](v T) *T { return &v }
