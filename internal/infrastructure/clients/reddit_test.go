package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redditListingBody = `{
	"data": {
		"children": [
			{"data": {"title": "Best badminton racket?", "author": "shuttler", "score": 42,
				"num_comments": 7, "created_utc": 1700000000, "permalink": "/r/badminton/comments/abc123/best/",
				"id": "abc123", "selftext": "Looking for recommendations"}},
			{"data": {"title": "Weekly thread", "author": "mod", "score": 5,
				"num_comments": 0, "created_utc": 1700000100, "permalink": "/r/badminton/comments/def456/weekly/",
				"id": "def456", "selftext": ""}}
		]
	}
}`

func TestSearchSubreddit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/badminton/search.json", r.URL.Path)
		assert.Equal(t, "racket", r.URL.Query().Get("q"))
		assert.Equal(t, "on", r.URL.Query().Get("restrict_sr"))
		assert.Equal(t, "relevance", r.URL.Query().Get("sort"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(redditListingBody))
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	posts, err := client.SearchSubreddit(context.Background(), "badminton", "racket", 0)
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, "Best badminton racket?", posts[0].Title)
	assert.Equal(t, "abc123", posts[0].PostID)
	assert.Equal(t, srv.URL+"/r/badminton/comments/abc123/best/", posts[0].URL)
}

func TestListing_TopPassesTimeFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/badminton/top.json", r.URL.Path)
		assert.Equal(t, "week", r.URL.Query().Get("t"))

		_, _ = w.Write([]byte(redditListingBody))
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	posts, err := client.Listing(context.Background(), "badminton", "top", "week", 5)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestListing_HotOmitsTimeFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/badminton/hot.json", r.URL.Path)
		assert.False(t, r.URL.Query().Has("t"))

		_, _ = w.Write([]byte(redditListingBody))
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	_, err := client.Listing(context.Background(), "badminton", "hot", "week", 5)
	require.NoError(t, err)
}

func TestPostContentAndComments(t *testing.T) {
	body := `[
		{"data": {"children": [{"data": {"title": "Best racket?", "author": "shuttler", "score": 42,
			"upvote_ratio": 0.97, "num_comments": 2, "created_utc": 1700000000,
			"selftext": "Full text here", "url": "https://example.com", "permalink": "/r/badminton/comments/abc123/best/",
			"is_video": false, "link_flair_text": "Question"}}]}},
		{"data": {"children": [
			{"data": {"author": "coach", "body": "Try the Astrox", "score": 10, "created_utc": 1700000200}},
			{"data": {"author": "", "body": "", "score": 0, "created_utc": 0}}
		]}}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/badminton/comments/abc123.json", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	content, err := client.PostContent(context.Background(), "badminton", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Best racket?", content.Title)
	assert.Equal(t, 0.97, content.UpvoteRatio)
	assert.Equal(t, "Full text here", content.Selftext)
	assert.Equal(t, "Question", content.LinkFlairText)

	comments, err := client.PostComments(context.Background(), "badminton", "abc123", 10)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Try the Astrox", comments[0].Body)
}

func TestUserListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/shuttler/submitted.json", r.URL.Path)
		_, _ = w.Write([]byte(redditListingBody))
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	posts, err := client.UserListing(context.Background(), "shuttler", "submitted", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewRedditClient(srv.URL, time.Second)

	_, err := client.SearchSubreddit(context.Background(), "badminton", "racket", 10)
	require.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, clampLimit(0))
	assert.Equal(t, 10, clampLimit(-5))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, 100, clampLimit(500))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 500))
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, truncate(string(long), 500), 500)
}
