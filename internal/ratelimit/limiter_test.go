package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordStore keeps rate-limit markers in memory.
type fakeRecordStore struct {
	records  []time.Time
	countErr error
	inserted int
	insert   error
}

func (f *fakeRecordStore) InsertRateLimitRecord(_ context.Context, _ string) error {
	if f.insert != nil {
		return f.insert
	}
	f.inserted++
	return nil
}

func (f *fakeRecordStore) CountRateLimitRecords(_ context.Context, _ string, since time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, ts := range f.records {
		if !ts.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRecordStore) OldestRateLimitRecord(_ context.Context, _ string, since time.Time) (time.Time, error) {
	var oldest time.Time
	for _, ts := range f.records {
		if ts.Before(since) {
			continue
		}
		if oldest.IsZero() || ts.Before(oldest) {
			oldest = ts
		}
	}
	if oldest.IsZero() {
		return time.Time{}, errors.New("no records")
	}
	return oldest, nil
}

func newTestLimiter(s RecordStore) *Limiter {
	return New(s, 10, 24*time.Hour, zerolog.Nop())
}

func TestCheck_UnauthenticatedFailsClosed(t *testing.T) {
	l := newTestLimiter(&fakeRecordStore{})
	res := l.Check(context.Background(), "")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestCheck_QuotaBoundary(t *testing.T) {
	now := time.Now()
	fs := &fakeRecordStore{}
	l := newTestLimiter(fs)
	l.now = func() time.Time { return now }

	// Nine records inside the window: one left.
	for i := 0; i < 9; i++ {
		fs.records = append(fs.records, now.Add(-time.Duration(i+1)*time.Hour))
	}
	res := l.Check(context.Background(), "u1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)

	// Tenth record: blocked.
	fs.records = append(fs.records, now.Add(-10*time.Hour))
	res = l.Check(context.Background(), "u1")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Contains(t, res.Message, "daily limit of 10 stars")
}

func TestCheck_RecordJustOutsideWindowDoesNotCount(t *testing.T) {
	now := time.Now()
	fs := &fakeRecordStore{}
	l := newTestLimiter(fs)
	l.now = func() time.Time { return now }

	// Nine in-window records plus one aged out by a second.
	for i := 0; i < 9; i++ {
		fs.records = append(fs.records, now.Add(-time.Duration(i+1)*time.Hour))
	}
	fs.records = append(fs.records, now.Add(-24*time.Hour-time.Second))

	res := l.Check(context.Background(), "u1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestCheck_ResetTimeIsOldestPlusWindow(t *testing.T) {
	now := time.Now()
	fs := &fakeRecordStore{}
	l := newTestLimiter(fs)
	l.now = func() time.Time { return now }

	oldest := now.Add(-20 * time.Hour)
	fs.records = append(fs.records, oldest)
	for i := 0; i < 9; i++ {
		fs.records = append(fs.records, now.Add(-time.Duration(i+1)*time.Hour))
	}

	res := l.Check(context.Background(), "u1")
	require.False(t, res.Allowed)
	require.NotNil(t, res.ResetTime)
	assert.Equal(t, oldest.Add(24*time.Hour), *res.ResetTime)
}

func TestCheck_FailsOpenOnCountError(t *testing.T) {
	fs := &fakeRecordStore{countErr: errors.New("store down")}
	l := newTestLimiter(fs)

	res := l.Check(context.Background(), "u1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 10, res.Remaining)
}

func TestRecord_SwallowsErrors(t *testing.T) {
	fs := &fakeRecordStore{insert: errors.New("store down")}
	l := newTestLimiter(fs)

	// Must not panic or surface the failure.
	l.Record(context.Background(), "u1")
}

func TestRecord_Inserts(t *testing.T) {
	fs := &fakeRecordStore{}
	l := newTestLimiter(fs)
	l.Record(context.Background(), "u1")
	assert.Equal(t, 1, fs.inserted)
}

func TestShortMessage(t *testing.T) {
	assert.Equal(t, "Daily limit reached! Come back later for more stars.", ShortMessage(0))
	assert.Equal(t, "Only 1 star left today!", ShortMessage(1))
	assert.Equal(t, "Only 3 stars left today!", ShortMessage(3))
	assert.Equal(t, "7 stars remaining today", ShortMessage(7))
}
