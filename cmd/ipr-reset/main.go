// Command ipr-reset clears every join request and reopens all groups.
// It is meant for demo and test environments only.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/clients"
)

const (
	defaultAPIURL = "http://localhost:8080"
	resetPath     = "/api/admin/reset"
)

var ErrMissingToken = errors.New("missing IPR_SERVICE_TOKEN environment variable")

type Poster interface {
	PostJSON(url string, headers http.Header, payload any) (int, []byte, error)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("can't load .env")
	}

	res, err := reset(clients.NewHTTPClient(), os.Getenv("IPR_API_URL"), os.Getenv("IPR_SERVICE_TOKEN"))
	if err != nil {
		log.Error().Err(err).Msg("reset failed")
		os.Exit(1)
	}
	log.Info().
		Int64("requests_deleted", res.RequestsDeleted).
		Int64("groups_reset", res.GroupsReset).
		Msg("Reset complete: cleared join requests and reset groups")
}

func reset(client Poster, apiURL, token string) (*dto.ResetResponseDTO, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	headers := http.Header{}
	headers.Set(auth.ServiceTokenHeader, token)

	status, body, err := client.PostJSON(strings.TrimRight(apiURL, "/")+resetPath, headers, nil)
	if err != nil {
		return nil, fmt.Errorf("request reset: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("reset: unexpected status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var res dto.ResetResponseDTO
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode reset response: %w", err)
	}
	return &res, nil
}
