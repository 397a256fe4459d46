package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/renzovm/bancli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, staticToken(token)), srv
}

func TestTransfer_RequestShape(t *testing.T) {
	var (
		gotPath  string
		gotAuth  string
		gotCT    string
		gotReqID string
		gotBody  map[string]any
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-ID")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}, "tok123")

	err := client.Transfer(context.Background(), 42, TransferRequest{
		SourceAccount: "A1",
		TargetAccount: "A2",
		Amount:        100.5,
		Currency:      "USD",
		Description:   "rent",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/transactions/user/42/transfer", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "application/json", gotCT)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, map[string]any{
		"sourceAccount": "A1",
		"targetAccount": "A2",
		"amount":        100.5,
		"currency":      "USD",
		"description":   "rent",
	}, gotBody)
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(AuthResponse{Token: "fresh", ID: 1, Name: "Ana"})
	}, "")

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDecodeError_BadRequestKeepsServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient funds"})
	}, "tok")

	err := client.Transfer(context.Background(), 1, TransferRequest{})

	require.Error(t, err)
	assert.Equal(t, "Insufficient funds", err.Error())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.NotErrorIs(t, err, ErrServer)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestDecodeError_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}, "stale")

		_, err := client.UserProfile(context.Background(), 1)

		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
		assert.Equal(t, "invalid credentials", err.Error())
	}
}

func TestDecodeError_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "tok")

	_, err := client.AccountsByUser(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeError_ServerErrorHidesPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"NullPointerException at TransactionService.java:481"}`))
	}, "tok")

	err := client.Deposit(context.Background(), DepositRequest{})

	require.ErrorIs(t, err, ErrServer)
	assert.NotContains(t, err.Error(), "NullPointerException")
}

func TestDo_MalformedBodyIsServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}, "tok")

	_, err := client.AccountsByUser(context.Background(), 1)

	assert.ErrorIs(t, err, ErrServer)
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, staticToken(""))

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLogin_EmptyTokenRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthResponse{ID: 1, Name: "Ana"})
	}, "")

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, ErrServer)
}

func TestTransactionHistory_Query(t *testing.T) {
	var gotQuery map[string][]string
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(Page[model.TransactionRecord]{
			Content:    []model.TransactionRecord{{ID: 10, TransactionStatus: model.StatusSuccess}},
			TotalPages: 3,
			Number:     1,
		})
	}, "tok")

	page, err := client.TransactionHistory(context.Background(), "A1", 42, HistoryFilters{
		Status:   "SUCCESS",
		FromDate: "2026-01-01",
		Page:     1,
		Size:     20,
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/transactions/history/account/A1", gotPath)
	assert.Equal(t, []string{"42"}, gotQuery["userId"])
	assert.Equal(t, []string{"SUCCESS"}, gotQuery["status"])
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["fromDate"])
	assert.NotContains(t, gotQuery, "toDate")
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"20"}, gotQuery["size"])

	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(10), page.Content[0].ID)
	assert.Equal(t, 3, page.TotalPages)
}
