package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/mock"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBootcampSvc(t *testing.T) (BootcampService, *mock.MockBootcampRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBootcampRepository(ctrl)
	return NewBootcampService(repo, logger.Nop()), repo
}

// ── CreateBootcamp ───────────────────────────────────────────────────────────

func TestBootcampService_CreateBootcamp(t *testing.T) {
	svc, repo := newTestBootcampSvc(t)

	in := models.Bootcamp{Title: "Go", Cue: "GO1", Description: "Go basics"}
	repo.EXPECT().CreateBootcamp(gomock.Any(), in).
		Return(models.Bootcamp{ID: 10, Title: "Go", Cue: "GO1", Description: "Go basics", Users: []models.UserSummary{}}, nil)

	created, err := svc.CreateBootcamp(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestBootcampService_CreateBootcamp_InvalidData(t *testing.T) {
	svc, _ := newTestBootcampSvc(t)

	_, err := svc.CreateBootcamp(context.Background(), models.Bootcamp{Title: "Go"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── AddUser ──────────────────────────────────────────────────────────────────

func TestBootcampService_AddUser(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "added"},
		{name: "bootcamp missing", repoErr: store.ErrBootcampNotFound},
		{name: "user missing", repoErr: store.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestBootcampSvc(t)

			repo.EXPECT().AddUser(gomock.Any(), int64(10), int64(1)).Return(tt.repoErr)

			err := svc.AddUser(context.Background(), 10, 1)
			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestBootcampService_AddUser_InvalidIDs(t *testing.T) {
	svc, _ := newTestBootcampSvc(t)

	assert.ErrorIs(t, svc.AddUser(context.Background(), 0, 1), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.AddUser(context.Background(), 1, -5), ErrInvalidDataProvided)
}

// ── GetBootcamp / ListBootcamps ──────────────────────────────────────────────

func TestBootcampService_GetBootcamp(t *testing.T) {
	svc, repo := newTestBootcampSvc(t)

	repo.EXPECT().FindBootcampByID(gomock.Any(), int64(10)).Return(models.Bootcamp{ID: 10}, nil)
	repo.EXPECT().FindBootcampByID(gomock.Any(), int64(99)).Return(models.Bootcamp{}, store.ErrBootcampNotFound)

	got, err := svc.GetBootcamp(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)

	_, err = svc.GetBootcamp(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrBootcampNotFound)
}

func TestBootcampService_ListBootcamps(t *testing.T) {
	svc, repo := newTestBootcampSvc(t)

	repo.EXPECT().FindAllBootcamps(gomock.Any()).Return([]models.Bootcamp{}, nil)

	bootcamps, err := svc.ListBootcamps(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bootcamps)
}
