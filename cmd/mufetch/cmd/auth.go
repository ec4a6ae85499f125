package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/elxecutor/mufetch/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with the Spotify API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Spotify API Authentication Setup")
		fmt.Println()
		fmt.Println("To get your Spotify API credentials:")
		fmt.Println("1. Go to: https://developer.spotify.com/dashboard")
		fmt.Println("2. Log in with your Spotify account")
		fmt.Println("3. Click 'Create an App'")
		fmt.Println("4. Fill in app name and description")
		fmt.Println("5. Copy your Client ID and Client Secret")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		clientID, err := prompt(reader, "Enter your Spotify Client ID: ")
		if err != nil {
			return err
		}
		clientSecret, err := prompt(reader, "Enter your Spotify Client Secret: ")
		if err != nil {
			return err
		}

		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("both Client ID and Client Secret are required")
		}
		if len(clientID) < 10 || len(clientSecret) < 10 {
			log.Warn("credentials seem too short, please verify they are correct")
		}

		store, err := config.DefaultStore()
		if err != nil {
			return err
		}
		if err := store.SaveCredentials(clientID, clientSecret); err != nil {
			return err
		}

		fmt.Println("Credentials saved successfully!")
		fmt.Println("You can now use 'mufetch search <query>' to search for music.")
		return nil
	},
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
