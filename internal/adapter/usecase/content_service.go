package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/match"
	"adrelay/internal/core/port"
)

// ContentService implements port.ContentUseCase. It orchestrates the
// matcher, the random selector and the impression recording: a non-nil
// response is returned only after its ContentRequest row is persisted.
type ContentService struct {
	repo port.ContentRepository

	// intn is math/rand.Intn unless overridden in tests.
	intn func(n int) int
}

// NewContentService creates the serving facade over the given repository.
func NewContentService(repo port.ContentRepository) *ContentService {
	return &ContentService{repo: repo, intn: rand.Intn}
}

// RequestContent serves the best-matching content for the query. Untargeted
// queries take the random path. A targeted query with no matching content
// falls back to random selection over the untargeted part of the same
// catalog slice; nil is returned when that is empty too.
func (s *ContentService) RequestContent(ctx context.Context, query port.ContentQuery) (*port.ContentResponse, error) {
	if !query.Format.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, query.Format)
	}
	if query.Target.Untargeted() {
		return s.RequestRandomContent(ctx, query.Source, query.Format)
	}
	candidates, err := s.repo.FindContentByFormat(ctx, query.Format)
	if err != nil {
		return nil, err
	}
	if chosen, ok := match.Best(candidates, query.Target); ok {
		return s.serve(ctx, chosen, query.Source)
	}
	if chosen, ok := match.Random(candidates, s.intn); ok {
		return s.serve(ctx, chosen, query.Source)
	}
	return nil, nil
}

// RequestRandomContent serves uniformly random untargeted content.
func (s *ContentService) RequestRandomContent(ctx context.Context, source string, format domain.ContentFormat) (*port.ContentResponse, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, format)
	}
	candidates, err := s.repo.FindContentByFormat(ctx, format)
	if err != nil {
		return nil, err
	}
	chosen, ok := match.Random(candidates, s.intn)
	if !ok {
		return nil, nil
	}
	return s.serve(ctx, chosen, source)
}

// serve records the impression and composes the response. Recording and
// response composition form one logical unit: on a persistence failure no
// response is returned, so an impression is never reported served without
// its record.
func (s *ContentService) serve(ctx context.Context, content domain.Content, source string) (*port.ContentResponse, error) {
	req := &domain.ContentRequest{
		Token:      uuid.NewString(),
		ContentID:  content.ID,
		CampaignID: content.CampaignID,
		Source:     source,
	}
	if err := s.repo.CreateContentRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("record impression: %w", err)
	}
	return &port.ContentResponse{
		ContentID: content.ID,
		Format:    content.Format,
		Type:      content.Type,
		Value:     content.Value,
		Token:     req.Token,
	}, nil
}
