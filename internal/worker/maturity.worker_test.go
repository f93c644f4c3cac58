package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"finsim/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCommitmentService struct {
	service.CommitmentService
	calls []time.Time
	err   error
}

func (f *fakeCommitmentService) NotifyMatured(ctx context.Context, now time.Time) (int, error) {
	f.calls = append(f.calls, now)
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func TestMaturitySweeper(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*60*60))

	t.Run("run now sweeps at the current instant in utc", func(t *testing.T) {
		fake := &fakeCommitmentService{}
		sweeper := NewMaturitySweeper(context.Background(), fake, zap.NewNop().Sugar())
		sweeper.Now = func() time.Time { return now }

		count, err := sweeper.RunNow()
		require.NoError(t, err)
		require.Equal(t, 3, count)
		require.Equal(t, []time.Time{now.UTC()}, fake.calls)
	})

	t.Run("errors surface", func(t *testing.T) {
		fake := &fakeCommitmentService{err: errors.New("db down")}
		sweeper := NewMaturitySweeper(context.Background(), fake, zap.NewNop().Sugar())

		_, err := sweeper.RunNow()
		require.ErrorContains(t, err, "db down")
	})

	t.Run("rejects a bad schedule", func(t *testing.T) {
		sweeper := NewMaturitySweeper(context.Background(), &fakeCommitmentService{}, zap.NewNop().Sugar())
		require.Error(t, sweeper.Register("every tuesday"))
		require.NoError(t, sweeper.Register("*/15 * * * *"))
		require.Len(t, sweeper.Cron.Entries(), 1)
	})
}
