// Package spotify is a minimal Spotify Web API client covering the lookups
// mufetch needs: search, album/artist detail, and artwork download. It uses
// the client-credentials OAuth flow and caches the access token until expiry.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	defaultAuthURL = "https://accounts.spotify.com/api/token"

	requestTimeout = 30 * time.Second
	maxImageBytes  = 10 * 1024 * 1024
)

// ErrNoCredentials is returned when the client is built without a client ID
// or secret.
var ErrNoCredentials = errors.New("spotify: missing client credentials")

// APIError is a non-200 response from the Spotify API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify: request failed: %d - %s", e.Status, e.Body)
}

// Client talks to the Spotify Web API. It is safe for concurrent use.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	authURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient builds a client from application credentials.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		authURL:      defaultAuthURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// authenticate obtains or refreshes the access token. Tokens are reused
// until shortly before they expire.
func (c *Client) authenticate(ctx context.Context) error {
	if c.clientID == "" || c.clientSecret == "" {
		return ErrNoCredentials
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Now().Before(c.tokenExpiry) {
		return nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("spotify: build token request: %w", err)
	}
	creds := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+creds)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("spotify: read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("spotify: parse token response: %w", err)
	}

	c.accessToken = token.AccessToken
	// Refresh a minute early so in-flight requests never race expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	log.Debug("spotify: access token refreshed")
	return nil
}

// get performs an authenticated GET against the API and decodes JSON into v.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v any) error {
	if err := c.authenticate(ctx); err != nil {
		return err
	}

	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("spotify: build request: %w", err)
	}
	c.mu.Lock()
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("spotify: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("spotify: parse %s response: %w", endpoint, err)
	}
	return nil
}

// Search looks up the single best match for a query. kind is one of track,
// album, or artist.
func (c *Client) Search(ctx context.Context, query, kind string) (*SearchResult, error) {
	params := url.Values{
		"q":     {query},
		"type":  {kind},
		"limit": {"1"},
	}
	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	return &SearchResult{
		Tracks:  resp.Tracks.Items,
		Albums:  resp.Albums.Items,
		Artists: resp.Artists.Items,
	}, nil
}

// GetAlbum fetches a full album, including its track listing and label.
func (c *Client) GetAlbum(ctx context.Context, id string) (*Album, error) {
	var album Album
	if err := c.get(ctx, "albums/"+id, nil, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetArtist fetches a full artist, including genres and follower count.
func (c *Client) GetArtist(ctx context.Context, id string) (*Artist, error) {
	var artist Artist
	if err := c.get(ctx, "artists/"+id, nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetArtistTopTracks fetches an artist's most popular tracks.
func (c *Client) GetArtistTopTracks(ctx context.Context, id string) ([]Track, error) {
	var resp topTracksResponse
	if err := c.get(ctx, "artists/"+id+"/top-tracks", url.Values{"market": {"US"}}, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// GetArtistAlbums fetches an artist's releases filtered by group
// ("album" or "single").
func (c *Client) GetArtistAlbums(ctx context.Context, id, includeGroups string) ([]Album, error) {
	params := url.Values{
		"include_groups": {includeGroups},
		"limit":          {"50"},
		"market":         {"US"},
	}
	var resp pagedAlbums
	if err := c.get(ctx, "artists/"+id+"/albums", params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// FetchImage downloads artwork bytes from a CDN URL. Responses are capped at
// maxImageBytes and must carry an image content type.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: build image request: %w", err)
	}
	req.Header.Set("User-Agent", "mufetch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: "image download failed"}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("spotify: url is not an image: %s", ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("spotify: read image: %w", err)
	}
	log.Debugf("spotify: fetched image (%d bytes)", len(data))
	return data, nil
}
