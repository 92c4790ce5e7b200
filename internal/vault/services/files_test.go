package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
	"github.com/dmitrijs2005/memoryvault/internal/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putFile(t *testing.T, st *store.Engine, id, owner string, at time.Time) {
	t.Helper()
	require.NoError(t, st.PutFile(context.Background(), &models.File{
		ID: id, Owner: owner, Name: id + ".png", MimeType: "image/png",
		Size: 1, CreatedAt: at, Payload: []byte{1},
	}))
}

func TestFiles_ListNewestFirst(t *testing.T) {
	st := newStore(t)
	base := time.UnixMilli(1_700_000_000_000).UTC()
	putFile(t, st, "old", "a@x.com", base)
	putFile(t, st, "new", "a@x.com", base.Add(2*time.Hour))
	putFile(t, st, "mid", "a@x.com", base.Add(time.Hour))
	putFile(t, st, "other", "b@x.com", base.Add(3*time.Hour))

	svc := NewFileService(st, "127.0.0.1:8088")
	files, err := svc.List(context.Background(), alice)
	require.NoError(t, err)

	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old"}, got)

	_, err = svc.List(context.Background(), models.Session{})
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestFiles_GetDeleteClear(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	putFile(t, st, "f1", "a@x.com", created)
	putFile(t, st, "f2", "a@x.com", created)
	putFile(t, st, "g1", "b@x.com", created)

	svc := NewFileService(st, "127.0.0.1:8088")

	f, err := svc.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1.png", f.Name)

	require.NoError(t, svc.Delete(ctx, "f1"))
	_, err = svc.Get(ctx, "f1")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, svc.Clear(ctx, alice))
	files, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = svc.Get(ctx, "g1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Clear(ctx, models.Session{}), common.ErrNotLoggedIn)
}

func TestFiles_StoreErrorsPropagate(t *testing.T) {
	svc := NewFileService(&failingFileStore{err: errDisk}, "h:1")
	ctx := context.Background()

	_, err := svc.List(ctx, alice)
	require.ErrorIs(t, err, errDisk)
	_, err = svc.Get(ctx, "x")
	require.ErrorIs(t, err, errDisk)
	require.ErrorIs(t, svc.Delete(ctx, "x"), errDisk)
	require.ErrorIs(t, svc.Clear(ctx, alice), errDisk)
}

func TestFiles_ShareLink(t *testing.T) {
	svc := NewFileService(nil, "127.0.0.1:8088")

	assert.Equal(t, "http://127.0.0.1:8088/view/abc-123", svc.ShareLink("abc-123"))
	assert.Equal(t, "http://127.0.0.1:8088/view/a%2Fb%20c", svc.ShareLink("a/b c"))
}
