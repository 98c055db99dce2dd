package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	groupsPath    = "/tplan/tasks/task3,7_fastview.php"
	timetablePath = "/tplan/tasks/tableFiller.php"
)

// Group группа с сайта расписания
type Group struct {
	ID   string
	Name string
}

// Fetcher скачивает расписание групп с сайта и классифицирует строки таблиц
type Fetcher struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewFetcher создаёт загрузчик; client может быть nil
func NewFetcher(baseURL string, client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Groups получает список групп из формы выбора
func (f *Fetcher) Groups(ctx context.Context) ([]Group, error) {
	body, err := f.postForm(ctx, groupsPath, url.Values{
		"step_no": {"1"},
		"task_id": {"7"},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch groups: %w", err)
	}
	defer body.Close()

	return parseGroups(body)
}

// Fetch скачивает расписание запрошенных групп (без учёта регистра).
// Пустой список означает все группы. Ошибка одной группы логируется и не прерывает остальные.
func (f *Fetcher) Fetch(ctx context.Context, names []string) ([]GroupRows, error) {
	groups, err := f.Groups(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	var result []GroupRows
	for _, g := range groups {
		if len(wanted) > 0 {
			if _, ok := wanted[strings.ToLower(g.Name)]; !ok {
				continue
			}
		}

		rows, err := f.fetchGroup(ctx, g)
		if err != nil {
			f.logger.Error("Failed to fetch group timetable",
				zap.String("group", g.Name),
				zap.String("group_id", g.ID),
				zap.Error(err),
			)
			continue
		}

		f.logger.Info("Group timetable fetched",
			zap.String("group", g.Name),
			zap.Int("rows", len(rows)),
		)
		result = append(result, GroupRows{Group: g, Rows: rows})
	}

	return result, nil
}

func (f *Fetcher) fetchGroup(ctx context.Context, g Group) ([]Row, error) {
	body, err := f.postForm(ctx, timetablePath, url.Values{
		"tab":     {"7"},
		"gp_name": {g.Name},
		"gp_id":   {g.ID},
	})
	if err != nil {
		return nil, err
	}
	defer body.Close()

	cells, err := parseTimetable(body)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, Classify(c))
	}
	return rows, nil
}

func (f *Fetcher) postForm(ctx context.Context, path string, form url.Values) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}

	return resp.Body, nil
}
