// Package display lays out music metadata next to rendered cover art,
// neofetch style.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/elxecutor/mufetch/internal/render"
	"github.com/elxecutor/mufetch/internal/spotify"
)

const (
	labelColumn = 12
	maxGenres   = 2
	maxTopSongs = 5
	gutter      = "   "
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)

	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	purpleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	whiteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Formatter renders entity metadata alongside artwork.
type Formatter struct {
	size   int
	out    io.Writer
	client *spotify.Client
}

// New builds a formatter writing to out. size is the artwork width in
// character cells; it is clamped by the renderer.
func New(out io.Writer, size int, client *spotify.Client) *Formatter {
	return &Formatter{size: size, out: out, client: client}
}

// Track prints a track with its album art.
func (f *Formatter) Track(ctx context.Context, track *spotify.Track) {
	image := f.imageBlock(ctx, firstImageURL(track.Album.Images))

	artists := make([]string, len(track.Artists))
	for i, a := range track.Artists {
		artists[i] = Hyperlink(a.ExternalURLs.Spotify, a.Name)
	}

	info := []string{
		f.infoLine("Name", track.Name, greenStyle),
		f.infoLine("Artist", strings.Join(artists, ", "), yellowStyle),
		f.infoLine("Album", Hyperlink(track.Album.ExternalURLs.Spotify, track.Album.Name), blueStyle),
		f.infoLine("Duration", FormatDuration(time.Duration(track.DurationMS)*time.Millisecond), whiteStyle),
		f.infoLine("Track", fmt.Sprintf("%d", track.TrackNumber), cyanStyle),
		f.infoLine("Explicit", FormatBool(track.Explicit), redStyle),
		f.infoLine("Released", FormatOrdinalDate(track.Album.ReleaseDate), cyanStyle),
		f.infoLine("Popularity", fmt.Sprintf("%d%%", track.Popularity), purpleStyle),
	}

	genres := track.Album.Genres
	if len(genres) == 0 && len(track.Artists) > 0 && f.client != nil {
		if artist, err := f.client.GetArtist(ctx, track.Artists[0].ID); err == nil {
			genres = artist.Genres
		}
	}
	if len(genres) > 0 {
		info = append(info, f.infoLine("Genres", joinGenres(genres), redStyle))
	}

	var links []string
	if url := firstImageURL(track.Album.Images); url != "" {
		links = append(links, blueStyle.Render(Hyperlink(url, "Album Cover")))
	}
	links = append(links, greenStyle.Render(Hyperlink(track.ExternalURLs.Spotify, "Spotify")))

	f.compose(image, info, links)
}

// Album prints an album with its cover art.
func (f *Formatter) Album(ctx context.Context, album *spotify.Album) {
	image := f.imageBlock(ctx, firstImageURL(album.Images))

	artists := make([]string, len(album.Artists))
	for i, a := range album.Artists {
		artists[i] = Hyperlink(a.ExternalURLs.Spotify, a.Name)
	}

	var totalMS int
	for _, t := range album.Tracks.Items {
		totalMS += t.DurationMS
	}

	info := []string{
		f.infoLine("Name", album.Name, greenStyle),
		f.infoLine("Artist", strings.Join(artists, ", "), yellowStyle),
		f.infoLine("Type", album.AlbumType, blueStyle),
		f.infoLine("Released", FormatOrdinalDate(album.ReleaseDate), cyanStyle),
		f.infoLine("Tracks", fmt.Sprintf("%d", album.TotalTracks), purpleStyle),
		f.infoLine("Duration", FormatDuration(time.Duration(totalMS)*time.Millisecond), whiteStyle),
		f.infoLine("Popularity", fmt.Sprintf("%d%%", album.Popularity), purpleStyle),
	}

	genres := album.Genres
	if len(genres) == 0 && len(album.Artists) > 0 && f.client != nil {
		if artist, err := f.client.GetArtist(ctx, album.Artists[0].ID); err == nil {
			genres = artist.Genres
		}
	}
	if len(genres) > 0 {
		info = append(info, f.infoLine("Genres", joinGenres(genres), redStyle))
	}
	if album.Label != "" {
		info = append(info, f.infoLine("Label", album.Label, whiteStyle))
	}

	if len(album.Tracks.Items) > 0 {
		info = append(info, "", headerStyle.Render("Top Tracks"))
		for _, t := range topOf(album.Tracks.Items) {
			info = append(info, greenStyle.Render(Hyperlink(t.ExternalURLs.Spotify, t.Name)))
		}
	}

	var links []string
	if url := firstImageURL(album.Images); url != "" {
		links = append(links, blueStyle.Render(Hyperlink(url, "Album Cover")))
	}
	links = append(links, greenStyle.Render(Hyperlink(album.ExternalURLs.Spotify, "Spotify")))

	f.compose(image, info, links)
}

// Artist prints an artist with their photo.
func (f *Formatter) Artist(ctx context.Context, artist *spotify.Artist) {
	image := f.imageBlock(ctx, firstImageURL(artist.Images))

	info := []string{
		f.infoLine("Name", artist.Name, greenStyle),
		f.infoLine("Followers", FormatCount(artist.Followers.Total), yellowStyle),
		f.infoLine("Popularity", fmt.Sprintf("%d%%", artist.Popularity), purpleStyle),
	}
	if len(artist.Genres) > 0 {
		info = append(info, f.infoLine("Genres", joinGenres(artist.Genres), redStyle))
	}

	var topTracks []spotify.Track
	if f.client != nil {
		if tracks, err := f.client.GetArtistTopTracks(ctx, artist.ID); err == nil {
			topTracks = tracks
		}
		if albums, err := f.client.GetArtistAlbums(ctx, artist.ID, "album"); err == nil && len(albums) > 0 {
			info = append(info, f.infoLine("Albums", fmt.Sprintf("%d", len(albums)), greenStyle))
		}
		if singles, err := f.client.GetArtistAlbums(ctx, artist.ID, "single"); err == nil && len(singles) > 0 {
			info = append(info, f.infoLine("Singles", fmt.Sprintf("%d", len(singles)), yellowStyle))
		}
	}

	if len(topTracks) > 0 {
		info = append(info, "", headerStyle.Render("Top Tracks"))
		for _, t := range topOf(topTracks) {
			info = append(info, greenStyle.Render(Hyperlink(t.ExternalURLs.Spotify, t.Name)))
		}
	}

	links := []string{greenStyle.Render(Hyperlink(artist.ExternalURLs.Spotify, "Spotify"))}
	if url := firstImageURL(artist.Images); url != "" {
		links = append(links, blueStyle.Render(Hyperlink(url, "Artist Photo")))
	}

	f.compose(image, info, links)
}

// imageBlock downloads and renders artwork, substituting the placeholder on
// any failure so metadata always prints.
func (f *Formatter) imageBlock(ctx context.Context, url string) *render.Block {
	if url == "" || f.client == nil {
		return render.Placeholder(f.size)
	}

	data, err := f.client.FetchImage(ctx, url)
	if err != nil {
		log.Debugf("display: image download failed: %v", err)
		return render.Placeholder(f.size)
	}

	block, err := render.Render(ctx, data, render.Options{
		Width: f.size,
		Mode:  render.CurrentColorMode(),
	})
	if err != nil {
		log.Debugf("display: image render failed: %v", err)
		return render.Placeholder(f.size)
	}
	return block
}

// infoLine builds a bold label padded to a fixed column plus a styled value.
func (f *Formatter) infoLine(label, value string, style lipgloss.Style) string {
	padding := labelColumn - len(label) + 2
	if padding < 2 {
		padding = 2
	}
	return labelStyle.Render(label) + strings.Repeat(" ", padding) + style.Render(value)
}

// compose interleaves image lines with info lines, placing the link row two
// rows from the bottom of the taller column.
func (f *Formatter) compose(image *render.Block, info, links []string) {
	blank := strings.Repeat(" ", image.Width)
	imgLine := func(i int) string {
		if i < len(image.Lines) {
			return " " + image.Lines[i]
		}
		return " " + blank
	}

	target := len(image.Lines)
	if len(info) > target {
		target = len(info)
	}
	target -= 2
	if target < len(info) {
		target = len(info)
	}

	for i := 0; i < target; i++ {
		line := ""
		if i < len(info) {
			line = info[i]
		}
		fmt.Fprintf(f.out, "%s%s%s\n", imgLine(i), gutter, line)
	}

	if len(links) > 0 {
		fmt.Fprintf(f.out, "%s%s%s\n", imgLine(target), gutter, strings.Join(links, gutter))
		target++
	}
	for i := target; i < len(image.Lines); i++ {
		fmt.Fprintln(f.out, imgLine(i))
	}
}

func firstImageURL(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func joinGenres(genres []string) string {
	if len(genres) > maxGenres {
		genres = genres[:maxGenres]
	}
	return strings.Join(genres, ", ")
}

func topOf(tracks []spotify.Track) []spotify.Track {
	if len(tracks) > maxTopSongs {
		return tracks[:maxTopSongs]
	}
	return tracks
}
