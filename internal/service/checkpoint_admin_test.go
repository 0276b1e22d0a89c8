package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardpost/internal/domain"
	"guardpost/internal/service"

	mock_service "guardpost/internal/service/mocks"
)

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCheckpointAdminService_Create_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockCheckpointRepository(ctrl)
	cache := mock_service.NewMockCheckpointCacheService(ctrl)

	var got *domain.Checkpoint
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp *domain.Checkpoint) error {
			got = cp
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewCheckpointAdminService(repo, cache, discardLogger())

	id, err := svc.Create(context.Background(), domain.CreateCheckpointRequest{
		Name:         "east gate",
		SiteName:     "warehouse-7",
		Lat:          51.5007,
		Lng:          -0.1246,
		RadiusMeters: 50,
		CheckFreqMin: 30,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected non-nil id")
	}
	if !got.IsActive {
		t.Fatalf("new checkpoint must be active")
	}
	if !got.RequireLocation {
		t.Fatalf("require_location must default to true")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt must be set")
	}
}

func TestCheckpointAdminService_Update_Partial(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockCheckpointRepository(ctrl)
	cache := mock_service.NewMockCheckpointCacheService(ctrl)

	existing := &domain.Checkpoint{
		ID:              uuid.New(),
		Name:            "east gate",
		SiteName:        "warehouse-7",
		Location:        domain.Coordinate{Lat: 51.5007, Lng: -0.1246},
		RadiusMeters:    50,
		CheckFreqMin:    30,
		RequireLocation: true,
		IsActive:        true,
	}
	repo.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil).Times(1)

	var got *domain.Checkpoint
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp *domain.Checkpoint) error {
			got = cp
			return nil
		}).
		Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	svc := service.NewCheckpointAdminService(repo, cache, discardLogger())

	err := svc.Update(context.Background(), existing.ID, domain.UpdateCheckpointRequest{
		Name:            strPtr("east gate B"),
		RadiusMeters:    intPtr(75),
		RequireLocation: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "east gate B" || got.RadiusMeters != 75 || got.RequireLocation {
		t.Fatalf("partial update mismatch: %+v", got)
	}
	// Untouched fields keep their values.
	if got.SiteName != "warehouse-7" || got.CheckFreqMin != 30 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestCheckpointAdminService_Deactivate_InvalidatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockCheckpointRepository(ctrl)
	cache := mock_service.NewMockCheckpointCacheService(ctrl)

	id := uuid.New()
	gomock.InOrder(
		repo.EXPECT().Deactivate(gomock.Any(), id).Return(nil),
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
	)

	svc := service.NewCheckpointAdminService(repo, cache, discardLogger())

	if err := svc.Deactivate(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
