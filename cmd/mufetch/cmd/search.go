package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/elxecutor/mufetch/internal/config"
	"github.com/elxecutor/mufetch/internal/display"
	"github.com/elxecutor/mufetch/internal/render"
	"github.com/elxecutor/mufetch/internal/spotify"
)

var (
	searchType string
	imageSize  int
)

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "auto", "Search type: auto, track, album, or artist")
	searchCmd.Flags().IntVarP(&imageSize, "size", "s", 20, "Image size (15-35)")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for music",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch searchType {
		case "auto", "track", "album", "artist":
		default:
			return fmt.Errorf("invalid search type %q", searchType)
		}

		store, err := config.DefaultStore()
		if err != nil {
			return err
		}
		if err := store.Init(); err != nil {
			return err
		}
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		if !cfg.HasCredentials() {
			fmt.Println("No Spotify credentials found!")
			fmt.Println("Run 'mufetch auth' to set up your API credentials.")
			os.Exit(1)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		termWidth := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			termWidth = w
		}

		client := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		formatter := display.New(os.Stdout, fitImageSize(imageSize, termWidth), client)

		// Hide the cursor while the art prints, and always restore it.
		fmt.Print("\x1b[?25l")
		defer fmt.Print("\x1b[?25h")
		fmt.Println()

		if searchType == "auto" {
			return searchAuto(ctx, client, formatter, args[0])
		}
		return searchSpecific(ctx, client, formatter, args[0], searchType)
	},
}

// searchAuto tries tracks, then albums, then artists, showing the first hit.
func searchAuto(ctx context.Context, client *spotify.Client, formatter *display.Formatter, query string) error {
	if result, err := client.Search(ctx, query, "track"); err == nil && len(result.Tracks) > 0 {
		formatter.Track(ctx, &result.Tracks[0])
		return nil
	} else if err != nil {
		log.Debugf("track search failed: %v", err)
	}

	if result, err := client.Search(ctx, query, "album"); err == nil && len(result.Albums) > 0 {
		showAlbum(ctx, client, formatter, &result.Albums[0])
		return nil
	} else if err != nil {
		log.Debugf("album search failed: %v", err)
	}

	if result, err := client.Search(ctx, query, "artist"); err == nil && len(result.Artists) > 0 {
		showArtist(ctx, client, formatter, &result.Artists[0])
		return nil
	} else if err != nil {
		log.Debugf("artist search failed: %v", err)
	}

	fmt.Printf("No results found for: %s\n", query)
	return nil
}

func searchSpecific(ctx context.Context, client *spotify.Client, formatter *display.Formatter, query, kind string) error {
	result, err := client.Search(ctx, query, kind)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch kind {
	case "track":
		if len(result.Tracks) == 0 {
			fmt.Printf("No tracks found for: %s\n", query)
			return nil
		}
		formatter.Track(ctx, &result.Tracks[0])
	case "album":
		if len(result.Albums) == 0 {
			fmt.Printf("No albums found for: %s\n", query)
			return nil
		}
		showAlbum(ctx, client, formatter, &result.Albums[0])
	case "artist":
		if len(result.Artists) == 0 {
			fmt.Printf("No artists found for: %s\n", query)
			return nil
		}
		showArtist(ctx, client, formatter, &result.Artists[0])
	}
	return nil
}

// infoColumnBudget is the room reserved next to the art: the leading space,
// the gutter, and a usable metadata column.
const infoColumnBudget = 44

// fitImageSize clamps the requested art width, then shrinks it further when
// the terminal is too narrow to hold the art and the metadata column side by
// side. termWidth <= 0 means the size is unknown (not a TTY).
func fitImageSize(requested, termWidth int) int {
	size := render.ClampCellWidth(requested)
	if termWidth <= 0 {
		return size
	}
	if budget := termWidth - infoColumnBudget; budget < size {
		size = render.ClampCellWidth(budget)
	}
	return size
}

// showAlbum upgrades a search hit to the full album object, which carries the
// track listing and label that search results omit.
func showAlbum(ctx context.Context, client *spotify.Client, formatter *display.Formatter, album *spotify.Album) {
	if full, err := client.GetAlbum(ctx, album.ID); err == nil {
		album = full
	} else {
		log.Debugf("album lookup failed: %v", err)
	}
	formatter.Album(ctx, album)
}

// showArtist upgrades a search hit to the full artist object.
func showArtist(ctx context.Context, client *spotify.Client, formatter *display.Formatter, artist *spotify.Artist) {
	if full, err := client.GetArtist(ctx, artist.ID); err == nil {
		artist = full
	} else {
		log.Debugf("artist lookup failed: %v", err)
	}
	formatter.Artist(ctx, artist)
}
