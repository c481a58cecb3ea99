package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/timeledger/internal/db"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/alexanderramin/timeledger/internal/repository"
	"github.com/alexanderramin/timeledger/internal/testutil"
	"github.com/stretchr/testify/require"
)

type repos struct {
	employees   repository.EmployeeRepo
	events      repository.ClockEventRepo
	tasks       repository.TaskRepo
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		employees:   repository.NewSQLiteEmployeeRepo(database),
		events:      repository.NewSQLiteClockEventRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database),
		assignments: repository.NewSQLiteAssignmentRepo(database),
		uow:         testutil.NewTestUoW(database),
	}
}

func seedEmployee(t *testing.T, r repos, first, last string) *domain.Employee {
	t.Helper()
	emp := testutil.NewTestEmployee(first, last)
	require.NoError(t, r.employees.Create(context.Background(), emp))
	return emp
}

func seedEvents(t *testing.T, r repos, events ...*domain.ClockEvent) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, r.events.Create(context.Background(), e))
	}
}

// recordingObserver keeps every use-case event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
