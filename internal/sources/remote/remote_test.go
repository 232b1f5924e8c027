package remote_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rmbrowse/internal/sources/remote"
	"github.com/agentstation/rmbrowse/internal/transport"
	"github.com/agentstation/rmbrowse/pkg/entities"
	"github.com/agentstation/rmbrowse/pkg/errors"
)

func character(id int) string {
	return fmt.Sprintf(`{"id":%d,"name":"Character %d","status":"Alive","species":"Human","type":"","gender":"Male",
		"origin":{"name":"Earth","url":""},"location":{"name":"Earth","url":""},"image":"","episode":[],
		"url":"https://rickandmortyapi.com/api/character/%d","created":"2017-11-04T18:48:46.250Z"}`, id, id, id)
}

func episode(id int) string {
	return fmt.Sprintf(`{"id":%d,"name":"Episode %d","air_date":"December 2, 2013","episode":"S01E%02d",
		"characters":["https://rickandmortyapi.com/api/character/1"],
		"url":"https://rickandmortyapi.com/api/episode/%d","created":"2017-11-10T12:56:33.798Z"}`, id, id, id, id)
}

type recorder struct {
	calls atomic.Int32
	last  atomic.Value
}

func newServer(t *testing.T, rec *recorder, handler func(w http.ResponseWriter, r *http.Request)) *transport.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.calls.Add(1)
		rec.last.Store(r.URL.RequestURI())
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return transport.New(server.URL + "/api")
}

func TestCharacters_FetchPage(t *testing.T) {
	rec := &recorder{}
	client := newServer(t, rec, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"info":{"count":2,"pages":1,"next":null,"prev":null},"results":[%s,%s]}`, character(1), character(2))
	})

	src := remote.NewCharacters(client)
	page, err := src.FetchPage(context.Background(), entities.CharacterFilter{
		Page:   entities.Ptr(1),
		Name:   entities.Ptr("rick"),
		Gender: entities.Ptr("male"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/character?gender=male&name=rick&page=1", rec.last.Load())
	assert.False(t, page.HasNext())
	assert.Equal(t, []int{1, 2}, entities.IDs(page.Results))
}

func TestEpisodes_FetchPageSeasonFilter(t *testing.T) {
	rec := &recorder{}
	client := newServer(t, rec, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"info":{"count":1,"pages":1,"next":null,"prev":null},"results":[%s]}`, episode(1))
	})

	page, err := remote.NewEpisodes(client).FetchPage(context.Background(), entities.EpisodeFilter{Episode: entities.Ptr("s01")})
	require.NoError(t, err)
	assert.Equal(t, "/api/episode?episode=s01", rec.last.Load())
	require.Len(t, page.Results, 1)
	assert.Equal(t, "December 2, 2013", page.Results[0].AirDate)
}

func TestLocations_FetchPage(t *testing.T) {
	rec := &recorder{}
	client := newServer(t, rec, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"info":{"count":126,"pages":7,"next":"https://rickandmortyapi.com/api/location?page=3","prev":"https://rickandmortyapi.com/api/location?page=1"},
			"results":[{"id":21,"name":"Testicle Monster Dimension","type":"Dimension","dimension":"unknown",
			"residents":["https://rickandmortyapi.com/api/character/7"],"url":"","created":"2017-11-18T19:41:01.605Z"}]}`))
	})

	page, err := remote.NewLocations(client).FetchPage(context.Background(), entities.LocationFilter{Page: entities.Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, "/api/location?page=2", rec.last.Load())
	assert.True(t, page.HasNext())
	assert.Equal(t, []int{7}, page.Results[0].ResidentIDs())
}

func TestFetchByIDs_Normalization(t *testing.T) {
	rec := &recorder{}
	client := newServer(t, rec, func(w http.ResponseWriter, r *http.Request) {
		ids := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/character/"), ",")
		if len(ids) == 1 {
			_, _ = w.Write([]byte(character(5)))
			return
		}
		items := make([]string, len(ids))
		for i, id := range ids {
			var n int
			_, _ = fmt.Sscan(id, &n)
			items[i] = character(n)
		}
		_, _ = w.Write([]byte("[" + strings.Join(items, ",") + "]"))
	})
	src := remote.NewCharacters(client)

	t.Run("empty makes no call", func(t *testing.T) {
		before := rec.calls.Load()
		items, err := src.FetchByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Equal(t, before, rec.calls.Load())
	})

	t.Run("single id returns bare object", func(t *testing.T) {
		items, err := src.FetchByIDs(context.Background(), []int{5})
		require.NoError(t, err)
		assert.Equal(t, "/api/character/5", rec.last.Load())
		assert.Equal(t, []int{5}, entities.IDs(items))
	})

	t.Run("several ids return array", func(t *testing.T) {
		items, err := src.FetchByIDs(context.Background(), []int{5, 6})
		require.NoError(t, err)
		assert.Equal(t, "/api/character/5,6", rec.last.Load())
		assert.Equal(t, []int{5, 6}, entities.IDs(items))
	})
}

func TestEpisodes_FetchByIDsSingleAsArray(t *testing.T) {
	rec := &recorder{}
	client := newServer(t, rec, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[" + episode(3) + "]"))
	})

	items, err := remote.NewEpisodes(client).FetchByIDs(context.Background(), []int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, entities.IDs(items))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    errors.ErrorKind
		checkFn func(error) bool
	}{
		{"not found", http.StatusNotFound, `{"error":"There is nothing here"}`, errors.KindHTTPStatus, errors.IsNotFound},
		{"rate limited", http.StatusTooManyRequests, ``, errors.KindHTTPStatus, errors.IsRateLimited},
		{"unknown status enum", http.StatusOK, `{"info":{"count":1,"pages":1},"results":[{"id":1,"status":"Zombie","gender":"Male","created":"2017-11-04T18:48:46.250Z"}]}`, errors.KindDecode, errors.IsDecode},
		{"malformed json", http.StatusOK, `{"info":`, errors.KindDecode, errors.IsDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newServer(t, &recorder{}, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			page, err := remote.NewCharacters(client).FetchPage(context.Background(), entities.CharacterFilter{})
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.Kind(err))
			assert.True(t, tt.checkFn(err))
			assert.Empty(t, page.Results)
		})
	}
}
