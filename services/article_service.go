package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/models"
	"portfolio-api/repositories"

	"github.com/google/uuid"
)

var articleRequired = []string{"Title"}

type ArticleService interface {
	ListPublic(ctx context.Context, userID string, kind string) ([]models.Article, error)
	ListAll(ctx context.Context, userID string, kind string) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	GetPublicBySlug(ctx context.Context, userID string, slug string) (*models.Article, error)
	Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error)
	Update(ctx context.Context, id string, req models.ArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleService struct {
	repo      repositories.ArticleRepository
	users     repositories.UserRepository
	resolver  AdminResolver
	validator *Validator
	now       func() time.Time
}

func NewArticleService(repo repositories.ArticleRepository, users repositories.UserRepository, resolver AdminResolver, validator *Validator) ArticleService {
	return &articleService{
		repo:      repo,
		users:     users,
		resolver:  resolver,
		validator: validator,
		now:       time.Now,
	}
}

func (s *articleService) ListPublic(ctx context.Context, userID string, kind string) ([]models.Article, error) {
	return s.list(ctx, userID, kind, true)
}

func (s *articleService) ListAll(ctx context.Context, userID string, kind string) ([]models.Article, error) {
	return s.list(ctx, userID, kind, false)
}

func (s *articleService) list(ctx context.Context, userID string, kind string, publishedOnly bool) ([]models.Article, error) {
	filter := repositories.ArticleFilter{Kind: models.ArticleKind(kind), PublishedOnly: publishedOnly}
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, models.ErrorValidation{Fields: map[string]string{"kind": "kind must be one of [article project]"}}
	}
	owner, err := listOwner(ctx, s.resolver, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByUser(ctx, owner, filter)
	if err != nil {
		return nil, storeError(err, "article")
	}
	return records, nil
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	recordID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, storeError(err, "article")
	}
	return record, nil
}

// GetPublicBySlug hides drafts behind the same not-found as a missing slug.
func (s *articleService) GetPublicBySlug(ctx context.Context, userID string, slug string) (*models.Article, error) {
	owner, err := listOwner(ctx, s.resolver, userID)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.GetBySlug(ctx, owner, slug)
	if err != nil {
		return nil, storeError(err, "article")
	}
	if !record.Published {
		return nil, models.ErrorNotFound{Resource: "article"}
	}
	return record, nil
}

func (s *articleService) Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	owner, err := recordOwner(ctx, s.resolver, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	record := &models.Article{Kind: models.KindArticle}
	record.UserID = owner
	if err := s.apply(ctx, record, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, storeError(err, "article")
	}
	return record, nil
}

func (s *articleService) Update(ctx context.Context, id string, req models.ArticleRequest) (*models.Article, error) {
	if err := s.validator.StructExcept(req, articleRequired...); err != nil {
		return nil, err
	}
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, record, req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, storeError(err, "article")
	}
	return record, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	recordID, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return storeError(err, "article")
	}
	return nil
}

func (s *articleService) apply(ctx context.Context, a *models.Article, req models.ArticleRequest) error {
	setString(&a.Title, req.Title)
	setString(&a.Summary, req.Summary)
	setString(&a.CoverImageURL, req.CoverImageURL)
	setString(&a.ProjectURL, req.ProjectURL)
	setString(&a.RepoURL, req.RepoURL)
	setInt(&a.OrderIndex, req.OrderIndex)
	if req.Kind != nil && *req.Kind != "" {
		a.Kind = models.ArticleKind(*req.Kind)
	}
	if req.Tags != nil {
		a.Tags = normalizeTags(req.Tags)
	}
	if err := requireFields(map[string]string{"title": a.Title}); err != nil {
		return err
	}

	if req.Content != nil {
		html, err := RenderMarkdown(*req.Content)
		if err != nil {
			return err
		}
		a.Content = *req.Content
		a.ContentHTML = html
	}

	if req.Published != nil {
		a.Published = *req.Published
		if a.Published && a.PublishedAt == nil {
			now := s.now()
			a.PublishedAt = &now
		}
	}

	slug := a.Slug
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slug = Slugify(*req.Slug)
	} else if slug == "" {
		slug = Slugify(a.Title)
	}
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	unique, err := s.uniqueSlug(ctx, slug, a.ID)
	if err != nil {
		return err
	}
	a.Slug = unique
	return nil
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *articleService) uniqueSlug(ctx context.Context, base string, self uuid.UUID) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugTaken(ctx, candidate, self)
		if err != nil {
			return "", storeError(err, "article")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
