package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Freeeeeet/lectures_bot/internal/model"
	"github.com/Freeeeeet/lectures_bot/internal/repository"
	"github.com/Freeeeeet/lectures_bot/internal/schedule"
	"github.com/Freeeeeet/lectures_bot/internal/scraper"
	"go.uber.org/zap"
)

var (
	// ErrEmptySchedule обновление не дало ни одного занятия, текущий документ остаётся
	ErrEmptySchedule = errors.New("refreshed schedule is empty")
	// ErrRefreshInProgress другое обновление ещё не завершилось
	ErrRefreshInProgress = errors.New("schedule refresh already in progress")
)

// TimetableFetcher источник строк расписания с сайта
type TimetableFetcher interface {
	Fetch(ctx context.Context, names []string) ([]scraper.GroupRows, error)
}

// ShareFetcher источник готового документа по ссылке на облачное хранилище
type ShareFetcher interface {
	Fetch(ctx context.Context, shareURL string) (model.Document, error)
}

// ScheduleService держит текущий документ расписания и отвечает на запросы.
// Документ подменяется только целиком, поэтому запросы безопасны параллельно с обновлением.
// Update не допускает двух обновлений одновременно.
type ScheduleService struct {
	current    atomic.Pointer[model.Document]
	refreshing atomic.Bool
	repo       repository.DocumentRepository
	fetcher    TimetableFetcher
	share      ShareFetcher
	groups     []string
	shareURL   string
	now        func() time.Time
	logger     *zap.Logger
}

// Option настройка сервиса
type Option func(*ScheduleService)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *ScheduleService) { s.now = now }
}

// WithShare включает загрузку документа по ссылке
func WithShare(share ShareFetcher, shareURL string) Option {
	return func(s *ScheduleService) {
		s.share = share
		s.shareURL = shareURL
	}
}

// NewScheduleService создаёт сервис с пустым документом
func NewScheduleService(
	repo repository.DocumentRepository,
	fetcher TimetableFetcher,
	groups []string,
	logger *zap.Logger,
	opts ...Option,
) *ScheduleService {
	s := &ScheduleService{
		repo:    repo,
		fetcher: fetcher,
		groups:  groups,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&model.Document{})
	return s
}

// Document возвращает текущий снимок документа
func (s *ScheduleService) Document() model.Document {
	return *s.current.Load()
}

// Replace атомарно подменяет документ
func (s *ScheduleService) Replace(doc model.Document) {
	s.current.Store(&doc)
}

// Load загружает сохранённый документ. Отсутствие документа не ошибка.
func (s *ScheduleService) Load(ctx context.Context) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			s.logger.Warn("No saved schedule document, starting empty")
			return nil
		}
		return fmt.Errorf("load schedule: %w", err)
	}

	s.Replace(doc)
	s.logger.Info("Schedule document loaded", zap.Int("weekdays", len(doc)))
	return nil
}

// Lectures расписание на день. Никогда не возвращает ошибку: любой сбой превращается в сообщение.
func (s *ScheduleService) Lectures(expression string) string {
	text, err := schedule.Lectures(s.Document(), expression, s.now())
	if err != nil {
		s.logger.Debug("Lectures query not resolved",
			zap.String("expression", expression),
			zap.Error(err),
		)
	}
	return text
}

// WeekLectures расписание недели для метки чётности, пустая метка означает текущую неделю
func (s *ScheduleService) WeekLectures(label string) string {
	text, err := schedule.WeekLectures(s.Document(), label, s.now())
	if err != nil {
		s.logger.Debug("Week lectures query not resolved",
			zap.String("label", label),
			zap.Error(err),
		)
	}
	return text
}

// refreshFromSite скачивает расписание с сайта, сохраняет и подменяет текущий документ.
// Вызывается только из Update, который держит флаг refreshing.
func (s *ScheduleService) refreshFromSite(ctx context.Context) error {
	rows, err := s.fetcher.Fetch(ctx, s.groups)
	if err != nil {
		return fmt.Errorf("fetch timetable: %w", err)
	}

	doc := scraper.Build(s.logger, rows)
	return s.commit(ctx, doc, "site")
}

// updateFromShare скачивает готовый документ по ссылке
func (s *ScheduleService) updateFromShare(ctx context.Context) error {
	if s.share == nil || s.shareURL == "" {
		return errors.New("share link is not configured")
	}

	doc, err := s.share.Fetch(ctx, s.shareURL)
	if err != nil {
		return fmt.Errorf("fetch shared schedule: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validate shared schedule: %w", err)
	}

	return s.commit(ctx, doc, "share")
}

// Update обновляет документ из ссылки, если она настроена, иначе с сайта.
// Единственная точка входа для обновления: второй параллельный вызов получает ErrRefreshInProgress.
func (s *ScheduleService) Update(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	defer s.refreshing.Store(false)

	if s.share != nil && s.shareURL != "" {
		return s.updateFromShare(ctx)
	}
	return s.refreshFromSite(ctx)
}

func (s *ScheduleService) commit(ctx context.Context, doc model.Document, source string) error {
	if len(doc) == 0 {
		return ErrEmptySchedule
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}

	s.Replace(doc)
	s.logger.Info("Schedule document replaced",
		zap.String("source", source),
		zap.Int("weekdays", len(doc)),
	)
	return nil
}
