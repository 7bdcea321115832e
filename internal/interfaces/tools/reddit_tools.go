package tools

import (
	"context"

	"playo/internal/infrastructure/clients"
)

type SearchSubredditTool struct {
	reddit *clients.RedditClient
}

func NewSearchSubredditTool(reddit *clients.RedditClient) *SearchSubredditTool {
	return &SearchSubredditTool{reddit: reddit}
}

func (t *SearchSubredditTool) Name() string { return "search_subreddit" }

func (t *SearchSubredditTool) Description() string {
	return "Search for posts in a subreddit, sorted by relevance."
}

func (t *SearchSubredditTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"subreddit": stringParam("Subreddit to search, without the 'r/' prefix"),
		"query":     stringParam("Search query"),
		"limit":     integerParam("Maximum number of posts (default 10, max 100)"),
	}, "subreddit", "query")
}

func (t *SearchSubredditTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	subreddit := stringArg(args, "subreddit", "")
	query := stringArg(args, "query", "")

	posts, err := t.reddit.SearchSubreddit(ctx, subreddit, query, intArg(args, "limit", 10))
	if err != nil {
		return errorResult(err), nil
	}

	return postsResult(map[string]any{"subreddit": subreddit, "query": query}, posts), nil
}

// SubredditListingTool serves the hot, new and top listings; each listing is
// registered as its own tool over the shared implementation.
type SubredditListingTool struct {
	reddit  *clients.RedditClient
	listing string
}

func NewSubredditHotPostsTool(reddit *clients.RedditClient) *SubredditListingTool {
	return &SubredditListingTool{reddit: reddit, listing: "hot"}
}

func NewSubredditNewPostsTool(reddit *clients.RedditClient) *SubredditListingTool {
	return &SubredditListingTool{reddit: reddit, listing: "new"}
}

func NewSubredditTopPostsTool(reddit *clients.RedditClient) *SubredditListingTool {
	return &SubredditListingTool{reddit: reddit, listing: "top"}
}

func (t *SubredditListingTool) Name() string {
	return "get_subreddit_" + t.listing
}

func (t *SubredditListingTool) Description() string {
	switch t.listing {
	case "hot":
		return "Get the posts currently trending in a subreddit."
	case "new":
		return "Get the most recently submitted posts in a subreddit."
	default:
		return "Get the top-scored posts in a subreddit over a time period."
	}
}

func (t *SubredditListingTool) Parameters() map[string]any {
	properties := map[string]any{
		"subreddit": stringParam("Subreddit to read, without the 'r/' prefix"),
		"limit":     integerParam("Maximum number of posts (default 10, max 100)"),
	}
	if t.listing == "top" {
		properties["time_filter"] = stringParam("Time period: 'hour', 'day', 'week', 'month', 'year' or 'all' (default 'day')")
	}
	return objectSchema(properties, "subreddit")
}

func (t *SubredditListingTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	subreddit := stringArg(args, "subreddit", "")

	timeFilter := ""
	if t.listing == "top" {
		timeFilter = stringArg(args, "time_filter", "day")
	}

	posts, err := t.reddit.Listing(ctx, subreddit, t.listing, timeFilter, intArg(args, "limit", 10))
	if err != nil {
		return errorResult(err), nil
	}

	return postsResult(map[string]any{"subreddit": subreddit, "listing": t.listing}, posts), nil
}

type GetPostContentTool struct {
	reddit *clients.RedditClient
}

func NewGetPostContentTool(reddit *clients.RedditClient) *GetPostContentTool {
	return &GetPostContentTool{reddit: reddit}
}

func (t *GetPostContentTool) Name() string { return "get_post_content" }

func (t *GetPostContentTool) Description() string {
	return "Get the full content of a single post, including its body text."
}

func (t *GetPostContentTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"subreddit": stringParam("Subreddit the post belongs to"),
		"post_id":   stringParam("ID of the post, e.g. 'abc123'"),
	}, "subreddit", "post_id")
}

func (t *GetPostContentTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	content, err := t.reddit.PostContent(ctx,
		stringArg(args, "subreddit", ""),
		stringArg(args, "post_id", ""),
	)
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success": true,
		"post":    content,
	}, nil
}

type GetPostCommentsTool struct {
	reddit *clients.RedditClient
}

func NewGetPostCommentsTool(reddit *clients.RedditClient) *GetPostCommentsTool {
	return &GetPostCommentsTool{reddit: reddit}
}

func (t *GetPostCommentsTool) Name() string { return "get_post_comments" }

func (t *GetPostCommentsTool) Description() string {
	return "Get the top-level comments on a post."
}

func (t *GetPostCommentsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"subreddit": stringParam("Subreddit the post belongs to"),
		"post_id":   stringParam("ID of the post"),
		"limit":     integerParam("Maximum number of comments (default 20, max 100)"),
	}, "subreddit", "post_id")
}

func (t *GetPostCommentsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	comments, err := t.reddit.PostComments(ctx,
		stringArg(args, "subreddit", ""),
		stringArg(args, "post_id", ""),
		intArg(args, "limit", 20),
	)
	if err != nil {
		return errorResult(err), nil
	}

	if comments == nil {
		comments = []clients.Comment{}
	}

	return map[string]any{
		"success":        true,
		"total_comments": len(comments),
		"comments":       comments,
	}, nil
}

// UserListingTool serves a user's submitted posts and comment history.
type UserListingTool struct {
	reddit  *clients.RedditClient
	listing string
}

func NewGetUserPostsTool(reddit *clients.RedditClient) *UserListingTool {
	return &UserListingTool{reddit: reddit, listing: "submitted"}
}

func NewGetUserCommentsTool(reddit *clients.RedditClient) *UserListingTool {
	return &UserListingTool{reddit: reddit, listing: "comments"}
}

func (t *UserListingTool) Name() string {
	if t.listing == "submitted" {
		return "get_user_posts"
	}
	return "get_user_comments"
}

func (t *UserListingTool) Description() string {
	if t.listing == "submitted" {
		return "Get the posts a user has submitted."
	}
	return "Get the comments a user has written."
}

func (t *UserListingTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"username": stringParam("Username, without the 'u/' prefix"),
		"limit":    integerParam("Maximum number of items (default 10, max 100)"),
	}, "username")
}

func (t *UserListingTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	username := stringArg(args, "username", "")

	posts, err := t.reddit.UserListing(ctx, username, t.listing, intArg(args, "limit", 10))
	if err != nil {
		return errorResult(err), nil
	}

	return postsResult(map[string]any{"username": username}, posts), nil
}

func postsResult(base map[string]any, posts []clients.Post) map[string]any {
	if posts == nil {
		posts = []clients.Post{}
	}
	base["success"] = true
	base["total_posts"] = len(posts)
	base["posts"] = posts
	return base
}
