package ourwork

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, publicURL string) error {
	return nil
}

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WorkItem{}))

	return NewService(NewRepository(db), &fakeStorage{url: "https://cdn.example.com/work.png"}), db
}

func TestCreateUnpublishedStaysOffPublicList(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	unpublished := false
	draft, err := svc.Create(ctx, CreateInput{
		Title:       "Draft report",
		Description: "Not ready yet.",
		IsPublished: &unpublished,
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)

	// The row itself must carry the flag, not just the returned struct.
	var stored WorkItem
	require.NoError(t, db.First(&stored, draft.ID).Error)
	assert.False(t, stored.IsPublished)

	_, err = svc.Create(ctx, CreateInput{
		Title:       "Flood relief in Sindhupalchok",
		Description: "Distributed supplies to 40 families.",
	})
	require.NoError(t, err)

	public, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Flood relief in Sindhupalchok", public[0].Title)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Title: " ", Description: "body"})
	assert.Error(t, err)

	_, err = svc.Create(ctx, CreateInput{Title: "Title", Description: ""})
	assert.Error(t, err)
}

func TestUpdateTogglesPublication(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, CreateInput{
		Title:       "School rebuild",
		Description: "Rebuilt two classrooms.",
	})
	require.NoError(t, err)
	require.True(t, item.IsPublished)

	unpublished := false
	updated, err := svc.Update(ctx, item.ID, UpdateInput{IsPublished: &unpublished})
	require.NoError(t, err)
	assert.False(t, updated.IsPublished)

	public, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = svc.Update(ctx, 9999, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}
