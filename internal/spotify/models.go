package spotify

// Image is one artwork variant served by the Spotify CDN.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ExternalURLs holds web links for an entity.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Followers carries an artist's follower count.
type Followers struct {
	Total int `json:"total"`
}

// Artist is a Spotify artist with the metadata mufetch displays.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Images       []Image      `json:"images"`
	Genres       []string     `json:"genres"`
	Popularity   int          `json:"popularity"`
	Followers    Followers    `json:"followers"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Album is a Spotify album. Tracks are populated only on full album lookups.
type Album struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []Artist     `json:"artists"`
	Images       []Image      `json:"images"`
	ReleaseDate  string       `json:"release_date"`
	TotalTracks  int          `json:"total_tracks"`
	Genres       []string     `json:"genres"`
	Popularity   int          `json:"popularity"`
	AlbumType    string       `json:"album_type"`
	Label        string       `json:"label"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Tracks       TrackPage    `json:"tracks"`
}

// TrackPage is the paged track listing embedded in a full album object.
type TrackPage struct {
	Items []Track `json:"items"`
}

// Track is a Spotify track. Search results include the full album object.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []Artist     `json:"artists"`
	Album        Album        `json:"album"`
	DurationMS   int          `json:"duration_ms"`
	Popularity   int          `json:"popularity"`
	TrackNumber  int          `json:"track_number"`
	DiscNumber   int          `json:"disc_number"`
	Explicit     bool         `json:"explicit"`
	PreviewURL   string       `json:"preview_url"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// SearchResult collects the first page of each entity type a search returned.
type SearchResult struct {
	Tracks  []Track
	Albums  []Album
	Artists []Artist
}

type searchResponse struct {
	Tracks struct {
		Items []Track `json:"items"`
	} `json:"tracks"`
	Albums struct {
		Items []Album `json:"items"`
	} `json:"albums"`
	Artists struct {
		Items []Artist `json:"items"`
	} `json:"artists"`
}

type pagedAlbums struct {
	Items []Album `json:"items"`
}

type topTracksResponse struct {
	Tracks []Track `json:"tracks"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}
