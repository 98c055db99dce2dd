package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"go.uber.org/zap"
)

// DefaultAPIURL адрес API облачного хранилища
const DefaultAPIURL = "https://api.onedrive.com"

// ErrShareRedirect ссылка не привела к адресу с resid и authkey
var ErrShareRedirect = errors.New("share link redirect")

// ShareResolver скачивает документ расписания по публичной ссылке облачного хранилища
type ShareResolver struct {
	client *http.Client
	apiURL string
	logger *zap.Logger
}

// NewShareResolver создаёт резолвер; пустой apiURL заменяется на DefaultAPIURL
func NewShareResolver(apiURL string, logger *zap.Logger) *ShareResolver {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &ShareResolver{
		client: &http.Client{Timeout: 30 * time.Second},
		apiURL: strings.TrimRight(apiURL, "/"),
		logger: logger,
	}
}

// Fetch проходит один редирект ссылки, достаёт resid и authkey и скачивает JSON-документ
func (r *ShareResolver) Fetch(ctx context.Context, shareURL string) (model.Document, error) {
	resid, authkey, err := r.resolve(ctx, shareURL)
	if err != nil {
		return nil, err
	}

	drive, _, _ := strings.Cut(resid, "!")
	contentURL := fmt.Sprintf("%s/drives/%s/items/%s/content?%s",
		r.apiURL,
		drive,
		resid,
		url.Values{"authkey": {authkey}}.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, contentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create content request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get content: unexpected status %d", resp.StatusCode)
	}

	var doc model.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode schedule document: %w", err)
	}

	r.logger.Info("Schedule document downloaded from share link",
		zap.String("resid", resid),
		zap.Int("weekdays", len(doc)),
	)

	return doc, nil
}

// resolve читает Location ответа на ссылку без перехода по нему
func (r *ShareResolver) resolve(ctx context.Context, shareURL string) (resid, authkey string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shareURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("create share request: %w", err)
	}

	client := *r.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("get share link: %w", err)
	}
	resp.Body.Close()

	location := resp.Header.Get("Location")
	if location == "" {
		return "", "", fmt.Errorf("%w: no location, status %d", ErrShareRedirect, resp.StatusCode)
	}

	target, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: parse location: %v", ErrShareRedirect, err)
	}

	query := target.Query()
	resid, authkey = query.Get("resid"), query.Get("authkey")
	if resid == "" || authkey == "" {
		return "", "", fmt.Errorf("%w: resid or authkey missing in %s", ErrShareRedirect, target.Redacted())
	}

	return resid, authkey, nil
}
