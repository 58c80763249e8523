package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joypop/joypop-api/internal/cache"
	"github.com/joypop/joypop-api/internal/model"
)

type fakeJarStore struct {
	jars      []model.Jar
	listCalls int
}

func (f *fakeJarStore) InsertJar(_ context.Context, userID, name string) (model.Jar, error) {
	j := model.Jar{ID: "jar-new", UserID: userID, Name: name, CreatedAt: time.Now().UTC()}
	f.jars = append([]model.Jar{j}, f.jars...)
	return j, nil
}

func (f *fakeJarStore) JarsByUser(_ context.Context, _ string) ([]model.Jar, error) {
	f.listCalls++
	return f.jars, nil
}

func TestJarCreate_TrimsName(t *testing.T) {
	fs := &fakeJarStore{}
	r := NewJarRepo(fs, cache.New())

	jar, err := r.Create(context.Background(), "u1", "  December Memories  ")
	require.NoError(t, err)
	assert.Equal(t, "December Memories", jar.Name)
}

func TestJarCreate_ValidatesName(t *testing.T) {
	r := NewJarRepo(&fakeJarStore{}, cache.New())

	_, err := r.Create(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, ErrEmptyJarName)

	_, err = r.Create(context.Background(), "u1", strings.Repeat("x", model.MaxJarNameLength+1))
	assert.ErrorIs(t, err, ErrJarNameTooLong)

	_, err = r.Create(context.Background(), "", "name")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestJars_CachesReads(t *testing.T) {
	fs := &fakeJarStore{jars: []model.Jar{{ID: "j1", Name: "First"}}}
	r := NewJarRepo(fs, cache.New())
	ctx := context.Background()

	_, err := r.Jars(ctx, "u1")
	require.NoError(t, err)
	_, err = r.Jars(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, fs.listCalls)
}

func TestJarCreate_InvalidatesList(t *testing.T) {
	fs := &fakeJarStore{}
	r := NewJarRepo(fs, cache.New())
	ctx := context.Background()

	jars, err := r.Jars(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, jars)

	_, err = r.Create(ctx, "u1", "Spring")
	require.NoError(t, err)

	jars, err = r.Jars(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, jars, 1)
}
