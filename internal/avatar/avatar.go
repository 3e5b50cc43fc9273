// Package avatar updates a Discord account's avatar from an image URL.
package avatar

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	DefaultAPIBase = "https://discord.com/api/v9"

	// maxImageSize caps the downloaded image; Discord rejects avatars above 10 MiB.
	maxImageSize = 10 << 20
)

// APIError is a non-2xx response from the Discord API.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("discord api responded with status %d", e.Status)
}

// StatusCode returns the HTTP status of the response.
func (e *APIError) StatusCode() int { return e.Status }

// Client fetches images and patches the current user's avatar.
type Client struct {
	http    *http.Client
	apiBase string
}

// NewClient returns a client that talks to apiBase (DefaultAPIBase when empty).
func NewClient(apiBase string, timeout time.Duration) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		apiBase: strings.TrimRight(apiBase, "/"),
	}
}

// FetchImage downloads the raw bytes behind imageURL.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image url: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image is larger than %d bytes", maxImageSize)
	}
	return data, nil
}

// DataURI embeds image bytes in a data URI. The media type is always PNG;
// Discord sniffs the real format.
func DataURI(image []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)
}

// SetAvatar patches users/@me with the given data URI, authenticating as the
// bot that owns token. A rejected request returns *APIError.
func (c *Client) SetAvatar(ctx context.Context, token, dataURI string) (*discordgo.User, error) {
	body, err := json.Marshal(struct {
		Avatar string `json:"avatar"`
	}{Avatar: dataURI})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.apiBase+"/users/@me", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bot "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read avatar response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg discordgo.APIErrorMessage
		if json.Unmarshal(respBody, &msg) == nil {
			apiErr.Code = msg.Code
			apiErr.Message = msg.Message
		}
		return nil, apiErr
	}

	var user discordgo.User
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &user); err != nil {
			return nil, fmt.Errorf("failed to decode avatar response: %w", err)
		}
	}
	return &user, nil
}

// Update fetches imageURL and sets it as the avatar of the bot owning token.
func (c *Client) Update(ctx context.Context, token, imageURL string) (*discordgo.User, error) {
	image, err := c.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return c.SetAvatar(ctx, token, DataURI(image))
}
