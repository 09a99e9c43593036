package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/internal/models"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type newsStore interface {
	News() []models.News
	PostNews(title, content string) models.News
}

// PostNewsRequest is the announcement form.
type PostNewsRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// NewsService serves the announcement feed.
type NewsService struct {
	store     newsStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   MutationRecorder
}

// NewNewsService constructs the news service.
func NewNewsService(store newsStore, validate *validator.Validate, logger *zap.Logger, metrics MutationRecorder) *NewsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{store: store, validator: validate, logger: logger, metrics: metrics}
}

// Feed returns announcements most-recent-first.
func (s *NewsService) Feed(ctx context.Context) []models.News {
	return s.store.News()
}

// Post publishes an announcement.
func (s *NewsService) Post(ctx context.Context, req PostNewsRequest) (*models.News, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid news payload")
	}
	post := s.store.PostNews(req.Title, req.Content)
	if s.metrics != nil {
		s.metrics.CountMutation("post_news")
	}
	s.logger.Info("news published", zap.Int("news_id", post.NewsID))
	return &post, nil
}
