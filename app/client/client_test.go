package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobfeed/app/store"
)

func TestClient_Save(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/save", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"job_id":"42","list_name":"Favorites"}`, string(body))
		_, _ = w.Write([]byte(`{"status":"saved"}`))
	}))
	defer ts.Close()

	reply, err := New(ts.URL, time.Second).Save(context.Background(), "42", "Favorites")
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.Empty(t, reply.Error)
}

func TestClient_Replies(t *testing.T) {
	tbl := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"json error", http.StatusConflict, `{"error":"List already exists"}`, "List already exists"},
		{"html error", http.StatusBadGateway, `<html>oops</html>`, ""},
		{"empty body", http.StatusInternalServerError, ``, ""},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			reply, err := New(ts.URL, time.Second).CreateList(context.Background(), "x")
			require.NoError(t, err, "server replies are not errors")
			assert.Equal(t, tt.status, reply.Status)
			assert.Equal(t, tt.wantErr, reply.Error)
			assert.False(t, reply.OK())
		})
	}
}

func TestClient_Requests(t *testing.T) {
	type req struct {
		method, path, body string
	}
	var got []req
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, req{method: r.Method, path: r.URL.EscapedPath(), body: string(body)})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second)
	ctx := context.Background()
	_, err := c.Unsave(ctx, "7", "")
	require.NoError(t, err)
	_, err = c.Scrape(ctx)
	require.NoError(t, err)
	_, err = c.DeleteList(ctx, "To Apply")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, http.MethodPost, got[0].method)
	assert.Equal(t, "/api/unsave", got[0].path)
	assert.JSONEq(t, `{"job_id":"7","list_name":""}`, got[0].body)
	assert.Equal(t, "/api/scrape", got[1].path)
	assert.JSONEq(t, `{}`, got[1].body)
	assert.Equal(t, http.MethodDelete, got[2].method)
	assert.Equal(t, "/api/lists/To%20Apply", got[2].path)
	assert.Empty(t, got[2].body)
}

func TestClient_Feed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs", r.URL.Path)
		assert.Equal(t, "remotive", r.URL.Query().Get("source"))
		assert.Equal(t, "power bi", r.URL.Query().Get("search"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		resp := map[string]any{"jobs": []store.JobPost{{ID: 5, Title: "BI Developer", IsSaved: true}},
			"total": 21, "page": 2, "total_pages": 2, "sources": []string{"remotive"}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer ts.Close()

	res, err := New(ts.URL, time.Second).Feed(context.Background(),
		store.FeedQuery{Source: "remotive", Search: "power bi", Days: 7, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 21, res.Total)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []string{"remotive"}, res.Sources)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "BI Developer", res.Jobs[0].Title)
	assert.True(t, res.Jobs[0].IsSaved)
}

func TestClient_ReadViews(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/api/saved/Later%20On":
			_, _ = w.Write([]byte(`{"jobs":[{"id":3,"title":"Analyst","list_name":"Later On"}],
				"lists":[{"id":2,"name":"Later On","count":1}],"current_list":"Later On"}`))
		case "/api/lists":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Saved","count":4}]`))
		case "/api/stats":
			_, _ = w.Write([]byte(`{"total_jobs":10,"saved_jobs":2,"by_source":{"remoteok":10},"scrape_running":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()
	c := New(ts.URL, time.Second)
	ctx := context.Background()

	saved, err := c.Saved(ctx, "Later On")
	require.NoError(t, err)
	assert.Equal(t, "Later On", saved.CurrentList)
	require.Len(t, saved.Jobs, 1)
	assert.Equal(t, int64(3), saved.Jobs[0].ID)
	require.Len(t, saved.Lists, 1)

	lists, err := c.Lists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.List{{ID: 1, Name: "Saved", Count: 4}}, lists)

	st, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, st.TotalJobs)
	assert.True(t, st.ScrapeRunning)
	assert.Nil(t, st.LastScrape)

	_, err = c.Saved(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestClient_BasicAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, passwd, ok := r.BasicAuth()
		if !ok || user != "jobfeed" || passwd != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := New(ts.URL, time.Second)
	_, err := c.Lists(context.Background())
	require.Error(t, err)

	c.User, c.Password = "jobfeed", "secret"
	lists, err := c.Lists(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	st := time.Now()
	_, err := New(ts.URL, 50*time.Millisecond).Save(context.Background(), "1", "Saved")
	require.Error(t, err)
	assert.Less(t, time.Since(st), 900*time.Millisecond)
}

func TestClient_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()
	_, err := New(ts.URL, time.Second).Scrape(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POST /api/scrape failed")
}
