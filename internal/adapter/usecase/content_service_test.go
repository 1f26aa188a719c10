package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
	"adrelay/internal/core/port/mocks"
)

func mustTarget(t *testing.T, ages []domain.TargetAge) domain.TargetContext {
	t.Helper()
	target, err := domain.NewTargetContext(ages, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewTargetContext: %v", err)
	}
	return target
}

// TestTargetedRequestRecordsOnce ensures a served targeted match is backed
// by exactly one persisted ContentRequest.
func TestTargetedRequestRecordsOnce(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	matching := domain.Content{
		ID:         1,
		CampaignID: 10,
		Format:     domain.FormatImage,
		Value:      "https://example.com/a.png",
		Criteria:   domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)},
		CreatedAt:  time.Now(),
	}
	untargeted := domain.Content{ID: 2, CampaignID: 11, Format: domain.FormatImage}

	repo.EXPECT().
		FindContentByFormat(mock.Anything, domain.FormatImage).
		Return([]domain.Content{untargeted, matching}, nil)

	var recorded *domain.ContentRequest
	repo.EXPECT().
		CreateContentRequest(mock.Anything, mock.AnythingOfType("*domain.ContentRequest")).
		Run(func(ctx context.Context, req *domain.ContentRequest) {
			recorded = req
			req.ID = 99
		}).
		Return(nil).
		Once()

	svc := NewContentService(repo)
	resp, err := svc.RequestContent(context.Background(), port.ContentQuery{
		Source: "web-frontend",
		Format: domain.FormatImage,
		Target: mustTarget(t, []domain.TargetAge{domain.Age18To24}),
	})
	if err != nil {
		t.Fatalf("RequestContent error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected content, got nil")
	}
	if resp.ContentID != matching.ID {
		t.Fatalf("expected content %d, got %d", matching.ID, resp.ContentID)
	}
	if recorded == nil {
		t.Fatal("expected a recorded impression")
	}
	if recorded.ContentID != matching.ID || recorded.CampaignID != matching.CampaignID {
		t.Fatalf("impression references content %d campaign %d", recorded.ContentID, recorded.CampaignID)
	}
	if recorded.Source != "web-frontend" {
		t.Fatalf("unexpected source %q", recorded.Source)
	}
	if recorded.BillID != nil {
		t.Fatal("new impression must be unbilled")
	}
	if resp.Token == "" || resp.Token != recorded.Token {
		t.Fatalf("response token %q does not identify the record %q", resp.Token, recorded.Token)
	}
}

// TestTargetedFallsBackToRandom ensures a targeted request with no matching
// content is served from the untargeted pool.
func TestTargetedFallsBackToRandom(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	nonMatching := domain.Content{
		ID:       1,
		Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age50Plus)},
	}
	untargeted := domain.Content{ID: 2, CampaignID: 5, Format: domain.FormatText, Value: "plain ad"}

	repo.EXPECT().
		FindContentByFormat(mock.Anything, domain.FormatText).
		Return([]domain.Content{nonMatching, untargeted}, nil)
	repo.EXPECT().
		CreateContentRequest(mock.Anything, mock.AnythingOfType("*domain.ContentRequest")).
		Return(nil).
		Once()

	svc := NewContentService(repo)
	resp, err := svc.RequestContent(context.Background(), port.ContentQuery{
		Source: "app",
		Format: domain.FormatText,
		Target: mustTarget(t, []domain.TargetAge{domain.Age18To24}),
	})
	if err != nil {
		t.Fatalf("RequestContent error: %v", err)
	}
	if resp == nil || resp.ContentID != untargeted.ID {
		t.Fatalf("expected fallback to untargeted content %d, got %+v", untargeted.ID, resp)
	}
}

// TestNoContentAvailable ensures an empty outcome records nothing and is
// not an error.
func TestNoContentAvailable(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	nonMatching := domain.Content{
		ID:       1,
		Criteria: domain.Criteria{Genders: domain.NewTargetSet(domain.GenderMale)},
	}
	repo.EXPECT().
		FindContentByFormat(mock.Anything, domain.FormatVideo).
		Return([]domain.Content{nonMatching}, nil)

	svc := NewContentService(repo)
	resp, err := svc.RequestContent(context.Background(), port.ContentQuery{
		Source: "app",
		Format: domain.FormatVideo,
		Target: mustTarget(t, []domain.TargetAge{domain.Age18To24}),
	})
	if err != nil {
		t.Fatalf("RequestContent error: %v", err)
	}
	if resp != nil {
		t.Fatalf("expected no content, got %+v", resp)
	}
}

// TestUntargetedRequestTakesRandomPath ensures a query with no target
// restriction never serves targeted content.
func TestUntargetedRequestTakesRandomPath(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	targeted := domain.Content{
		ID:       1,
		Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age25To34)},
	}
	untargeted := domain.Content{ID: 2, Format: domain.FormatImage}

	repo.EXPECT().
		FindContentByFormat(mock.Anything, domain.FormatImage).
		Return([]domain.Content{targeted, untargeted}, nil)
	repo.EXPECT().
		CreateContentRequest(mock.Anything, mock.AnythingOfType("*domain.ContentRequest")).
		Return(nil).
		Once()

	svc := NewContentService(repo)
	resp, err := svc.RequestContent(context.Background(), port.ContentQuery{
		Source: "app",
		Format: domain.FormatImage,
		Target: mustTarget(t, nil),
	})
	if err != nil {
		t.Fatalf("RequestContent error: %v", err)
	}
	if resp == nil || resp.ContentID != untargeted.ID {
		t.Fatalf("expected untargeted content %d, got %+v", untargeted.ID, resp)
	}
}

// TestPersistenceFailureWithholdsResponse ensures a failed record write
// never produces a served response.
func TestPersistenceFailureWithholdsResponse(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	untargeted := domain.Content{ID: 1, Format: domain.FormatText}
	repo.EXPECT().
		FindContentByFormat(mock.Anything, domain.FormatText).
		Return([]domain.Content{untargeted}, nil)
	repo.EXPECT().
		CreateContentRequest(mock.Anything, mock.AnythingOfType("*domain.ContentRequest")).
		Return(errors.New("connection reset"))

	svc := NewContentService(repo)
	resp, err := svc.RequestRandomContent(context.Background(), "app", domain.FormatText)
	if err == nil {
		t.Fatal("expected error from failed recording")
	}
	if resp != nil {
		t.Fatalf("response must be withheld on persistence failure, got %+v", resp)
	}
}

func TestInvalidFormatRejected(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)

	svc := NewContentService(repo)
	_, err := svc.RequestContent(context.Background(), port.ContentQuery{
		Source: "app",
		Format: "billboard",
		Target: mustTarget(t, nil),
	})
	if !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	_, err = svc.RequestRandomContent(context.Background(), "app", "billboard")
	if !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
