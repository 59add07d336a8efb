package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/graph/port"
)

// HTTPGateway implements port.Gateway against the Facebook Graph REST API.
type HTTPGateway struct {
	baseURL string
	version string
	client  *http.Client
}

// NewHTTPGateway constructs a gateway. timeout bounds every outbound call.
func NewHTTPGateway(baseURL, version string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL: baseURL,
		version: version,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ port.Gateway = (*HTTPGateway)(nil)

type profileResponse struct {
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
}

// FetchProfile resolves a correspondent's display name and picture.
func (g *HTTPGateway) FetchProfile(ctx context.Context, userID, accessToken string) (port.Profile, error) {
	q := url.Values{}
	q.Set("fields", "name,profile_pic")
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s/%s?%s", g.baseURL, g.version, userID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return port.Profile{}, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return port.Profile{}, fmt.Errorf("graph: fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return port.Profile{}, fmt.Errorf("graph: fetch profile: status %d: %s", resp.StatusCode, readBody(resp.Body))
	}

	var pr profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return port.Profile{}, fmt.Errorf("graph: decode profile: %w", err)
	}
	return port.Profile{Name: pr.Name, PictureURL: pr.ProfilePic}, nil
}

type sendMessageRequest struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

// SendMessage delivers text to a correspondent on behalf of the page.
func (g *HTTPGateway) SendMessage(ctx context.Context, pageID, recipientID, text, accessToken string) error {
	var body sendMessageRequest
	body.Recipient.ID = recipientID
	body.Message.Text = text
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s/%s/messages?%s", g.baseURL, g.version, pageID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("graph: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph: send message: status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

// SubscribePage subscribes the app to the page's messaging webhook events.
// The subscribed_apps edge is version-less, matching the Graph docs.
func (g *HTTPGateway) SubscribePage(ctx context.Context, pageID, accessToken string) error {
	payload, err := json.Marshal(map[string]string{
		"subscribed_fields": "messages,messaging_postbacks,message_deliveries,message_reads",
	})
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s/subscribed_apps?%s", g.baseURL, pageID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("graph: subscribe page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph: subscribe page: status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return string(b)
}
