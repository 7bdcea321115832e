package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const maxRedditLimit = 100

// RedditClient reads public subreddit data. No auth is needed for the .json
// endpoints; the client just forwards parameters and maps response fields.
type RedditClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewRedditClient(baseURL string, timeout time.Duration) *RedditClient {
	return &RedditClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type Post struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	PostID      string  `json:"post_id"`
	Selftext    string  `json:"selftext"`
}

type PostContent struct {
	PostID        string  `json:"post_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	Selftext      string  `json:"selftext"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	IsVideo       bool    `json:"is_video"`
	LinkFlairText string  `json:"link_flair_text"`
}

type Comment struct {
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
}

type redditThing struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	Permalink     string  `json:"permalink"`
	ID            string  `json:"id"`
	Selftext      string  `json:"selftext"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	URL           string  `json:"url"`
	IsVideo       bool    `json:"is_video"`
	LinkFlairText string  `json:"link_flair_text"`
	Body          string  `json:"body"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditThing `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (c *RedditClient) SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]Post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("restrict_sr", "on")
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	params.Set("sort", "relevance")

	var listing redditListing
	path := fmt.Sprintf("/r/%s/search.json", subreddit)
	if err := c.getJSON(ctx, path, params, &listing); err != nil {
		return nil, err
	}

	return c.toPosts(listing), nil
}

// Listing fetches a subreddit listing: "hot", "new" or "top". timeFilter is
// only meaningful for "top".
func (c *RedditClient) Listing(ctx context.Context, subreddit, listing, timeFilter string, limit int) ([]Post, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))
	if listing == "top" && timeFilter != "" {
		params.Set("t", timeFilter)
	}

	var result redditListing
	path := fmt.Sprintf("/r/%s/%s.json", subreddit, listing)
	if err := c.getJSON(ctx, path, params, &result); err != nil {
		return nil, err
	}

	return c.toPosts(result), nil
}

func (c *RedditClient) PostContent(ctx context.Context, subreddit, postID string) (PostContent, error) {
	var thread []redditListing
	path := fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID)
	if err := c.getJSON(ctx, path, nil, &thread); err != nil {
		return PostContent{}, err
	}

	if len(thread) == 0 || len(thread[0].Data.Children) == 0 {
		return PostContent{}, fmt.Errorf("post %s not found in r/%s", postID, subreddit)
	}

	p := thread[0].Data.Children[0].Data
	return PostContent{
		PostID:        postID,
		Title:         p.Title,
		Author:        p.Author,
		Score:         p.Score,
		UpvoteRatio:   p.UpvoteRatio,
		NumComments:   p.NumComments,
		CreatedUTC:    p.CreatedUTC,
		Selftext:      p.Selftext,
		URL:           p.URL,
		Permalink:     c.baseURL + p.Permalink,
		IsVideo:       p.IsVideo,
		LinkFlairText: p.LinkFlairText,
	}, nil
}

func (c *RedditClient) PostComments(ctx context.Context, subreddit, postID string, limit int) ([]Comment, error) {
	var thread []redditListing
	path := fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID)
	if err := c.getJSON(ctx, path, nil, &thread); err != nil {
		return nil, err
	}

	if len(thread) < 2 {
		return nil, nil
	}

	var comments []Comment
	for _, child := range thread[1].Data.Children {
		if child.Data.Body == "" {
			continue // "more comments" stubs
		}
		comments = append(comments, Comment{
			Author:     child.Data.Author,
			Body:       child.Data.Body,
			Score:      child.Data.Score,
			CreatedUTC: child.Data.CreatedUTC,
		})
		if len(comments) >= clampLimit(limit) {
			break
		}
	}

	return comments, nil
}

// UserListing fetches a user's history: "submitted" for posts, "comments"
// for comments.
func (c *RedditClient) UserListing(ctx context.Context, username, listing string, limit int) ([]Post, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))

	var result redditListing
	path := fmt.Sprintf("/user/%s/%s.json", username, listing)
	if err := c.getJSON(ctx, path, params, &result); err != nil {
		return nil, err
	}

	return c.toPosts(result), nil
}

func (c *RedditClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling reddit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error calling reddit: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding reddit response: %w", err)
	}

	return nil
}

func (c *RedditClient) toPosts(listing redditListing) []Post {
	var posts []Post
	for _, child := range listing.Data.Children {
		p := child.Data
		posts = append(posts, Post{
			Title:       p.Title,
			Author:      p.Author,
			Score:       p.Score,
			NumComments: p.NumComments,
			CreatedUTC:  p.CreatedUTC,
			URL:         c.baseURL + p.Permalink,
			PostID:      p.ID,
			Selftext:    truncate(p.Selftext, 500),
		})
	}
	return posts
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > maxRedditLimit {
		return maxRedditLimit
	}
	return limit
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
