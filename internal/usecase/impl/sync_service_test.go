package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	mockRepo "gsync/internal/mocks/repository"
	mockService "gsync/internal/mocks/service"
	mockUsecase "gsync/internal/mocks/usecase"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Wednesday of ISO week 2025-W11; three weeks of lookback plan W09, W10 and W11.
var syncTestNow = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

type syncFixture struct {
	userID      uuid.UUID
	tokenStore  *mockUsecase.MockTokenStore
	refresher   *mockUsecase.MockTokenRefresher
	tracker     *mockUsecase.MockProgressTracker
	tokenRepo   *mockRepo.MockTokenRepository
	recordRepo  *mockRepo.MockRecordRepository
	matchRepo   *mockRepo.MockMatchRepository
	messageRepo *mockRepo.MockMessageRepository
	mail        *mockService.MockMailSource
	calendar    *mockService.MockCalendarSource
	publisher   *mockService.MockEventPublisher
	svc         *syncService

	mu       sync.Mutex
	heads    []entity.HeadPatch
	messages []*entity.SyncMessage
}

func newSyncFixture(t *testing.T) *syncFixture {
	f := &syncFixture{
		userID:      uuid.New(),
		tokenStore:  mockUsecase.NewMockTokenStore(t),
		refresher:   mockUsecase.NewMockTokenRefresher(t),
		tracker:     mockUsecase.NewMockProgressTracker(t),
		tokenRepo:   mockRepo.NewMockTokenRepository(t),
		recordRepo:  mockRepo.NewMockRecordRepository(t),
		matchRepo:   mockRepo.NewMockMatchRepository(t),
		messageRepo: mockRepo.NewMockMessageRepository(t),
		mail:        mockService.NewMockMailSource(t),
		calendar:    mockService.NewMockCalendarSource(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}

	cfg := newTestConfig()
	cfg.Sync.Email.LookbackWeeks = 3
	cfg.Sync.Calendar.CalendarIDs = []string{"primary"}

	f.svc = NewSyncService(SyncServiceParams{
		TokenStore:  f.tokenStore,
		Refresher:   f.refresher,
		Tracker:     f.tracker,
		TokenRepo:   f.tokenRepo,
		RecordRepo:  f.recordRepo,
		MatchRepo:   f.matchRepo,
		MessageRepo: f.messageRepo,
		Mail:        f.mail,
		Calendar:    f.calendar,
		Publisher:   f.publisher,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}).(*syncService)
	f.svc.now = func() time.Time { return syncTestNow }
	f.svc.planner.now = f.svc.now

	f.messageRepo.EXPECT().Append(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *entity.SyncMessage) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.messages = append(f.messages, msg)

			return nil
		}).Maybe()
	f.tracker.EXPECT().SetHeadStatus(mock.Anything, f.userID, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ entity.SyncType, _ uuid.UUID, patch entity.HeadPatch) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.heads = append(f.heads, patch)

			return nil
		}).Maybe()
	f.tracker.EXPECT().SetPeriodStatus(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error {
			if !period.CanTransitionAt(patch.Status, f.svc.now()) {
				return domainerrors.ErrInvalidPeriodTransition
			}
			period.Apply(patch)

			return nil
		}).Maybe()

	return f
}

// acquire expects a successful guard and token lookup, with storedPeriods as the existing checkpoints.
func (f *syncFixture) acquire(syncType entity.SyncType, storedPeriods []*entity.SyncPeriod) {
	f.tracker.EXPECT().TryStartRun(mock.Anything, f.userID, syncType, mock.Anything).Return(true, nil)
	f.tokenStore.EXPECT().GetValidAccessTokenOrThrow(mock.Anything, f.userID).Return("a1", nil)
	f.tracker.EXPECT().Periods(mock.Anything, f.userID, syncType).Return(storedPeriods, nil)
}

func (f *syncFixture) lastHead() entity.HeadPatch {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.heads[len(f.heads)-1]
}

func (f *syncFixture) messagesAt(level entity.MessageLevel) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, msg := range f.messages {
		if msg.Level == level {
			out = append(out, msg.Message)
		}
	}

	return out
}

func emailsFor(start time.Time, n int) []*entity.EmailRecord {
	records := make([]*entity.EmailRecord, n)
	for i := range records {
		records[i] = &entity.EmailRecord{ProviderID: uuid.NewString(), InternalDate: start.Add(time.Duration(i) * time.Hour)}
	}

	return records
}

func weekStart(key string) time.Time {
	w, _ := entity.ParsePeriodKey(entity.SyncTypeEmail, key)

	return w.Start
}

func TestSyncService_Run_AllPeriodsComplete(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.acquire(entity.SyncTypeEmail, nil)

	var fetched []time.Time
	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.Credentials, _ uuid.UUID, start, end time.Time) ([]*entity.EmailRecord, error) {
			fetched = append(fetched, start)
			assert.Equal(t, start.AddDate(0, 0, 7), end)

			return emailsFor(start, 2), nil
		}).Times(3)
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(2, nil).Times(3)
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(1, nil).Times(3)

	result, err := f.svc.Run(ctx, usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, 6, result.Upserted)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, []time.Time{weekStart("2025-W09"), weekStart("2025-W10"), weekStart("2025-W11")}, fetched)
	for _, pr := range result.Periods {
		assert.Equal(t, entity.PeriodStatusComplete, pr.Status)
	}

	head := f.lastHead()
	assert.Equal(t, entity.PeriodStatusComplete, head.Status)
	assert.Empty(t, *head.ErrorMessage)
	assert.NotEmpty(t, f.messagesAt(entity.MessageLevelMilestone))
}

func TestSyncService_Run_PeriodFailureIsIsolated(t *testing.T) {
	f := newSyncFixture(t)
	f.acquire(entity.SyncTypeEmail, nil)

	failing := weekStart("2025-W10")
	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.Credentials, _ uuid.UUID, start, _ time.Time) ([]*entity.EmailRecord, error) {
			if start.Equal(failing) {
				return nil, &domainerrors.HTTPError{Status: 500, URL: "https://gmail.googleapis.com/gmail/v1/users/me/messages"}
			}

			return emailsFor(start, 1), nil
		}).Times(3)
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(1, nil).Times(2)
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Times(2)

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	require.Len(t, result.Periods, 3)
	assert.False(t, result.OK)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[0].Status)
	assert.Equal(t, entity.PeriodStatusError, result.Periods[1].Status)
	assert.Contains(t, result.Periods[1].Error, "status 500")
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[2].Status)
	assert.Equal(t, 2, result.Upserted)

	head := f.lastHead()
	assert.Equal(t, entity.PeriodStatusError, head.Status)
	assert.Equal(t, "1 of 3 periods did not complete", *head.ErrorMessage)
	assert.NotEmpty(t, f.messagesAt(entity.MessageLevelError))
}

func TestSyncService_Run_ResumesFromCheckpoints(t *testing.T) {
	f := newSyncFixture(t)

	stored := []*entity.SyncPeriod{
		entity.WeekWindow(weekStart("2025-W09")).NewPeriod(f.userID),
		entity.WeekWindow(weekStart("2025-W10")).NewPeriod(f.userID),
	}
	stored[0].Status = entity.PeriodStatusComplete
	stored[0].Upserted = 7
	stored[1].Status = entity.PeriodStatusError
	stored[1].ErrorMessage = "provider request failed with status 500"
	f.acquire(entity.SyncTypeEmail, stored)

	var fetched []time.Time
	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.Credentials, _ uuid.UUID, start, _ time.Time) ([]*entity.EmailRecord, error) {
			fetched = append(fetched, start)

			return nil, nil
		}).Times(2)
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(0, nil).Times(2)
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Times(2)

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, []time.Time{weekStart("2025-W10"), weekStart("2025-W11")}, fetched)
	assert.True(t, result.Periods[0].Skipped)
	assert.Equal(t, 7, result.Periods[0].Upserted)
	assert.Equal(t, 0, result.Upserted)
	assert.Empty(t, stored[1].ErrorMessage)
}

func completedWeeks(userID uuid.UUID, keys ...string) []*entity.SyncPeriod {
	periods := make([]*entity.SyncPeriod, len(keys))
	for i, key := range keys {
		periods[i] = entity.WeekWindow(weekStart(key)).NewPeriod(userID)
		periods[i].Status = entity.PeriodStatusComplete
		periods[i].Upserted = 4
	}

	return periods
}

func TestSyncService_Run_RefetchesCompleteOpenWindow(t *testing.T) {
	f := newSyncFixture(t)
	// Friday of 2025-W11: W09 and W10 are closed, W11 is still open.
	friday := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return friday }
	f.svc.planner.now = f.svc.now

	stored := completedWeeks(f.userID, "2025-W09", "2025-W10", "2025-W11")
	f.acquire(entity.SyncTypeEmail, stored)

	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, weekStart("2025-W11"), weekStart("2025-W12")).
		Return(emailsFor(weekStart("2025-W11"), 5), nil).Once()
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(5, nil).Once()
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(2, nil).Once()

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	assert.True(t, result.OK)
	require.Len(t, result.Periods, 3)
	assert.True(t, result.Periods[0].Skipped)
	assert.True(t, result.Periods[1].Skipped)
	assert.False(t, result.Periods[2].Skipped)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[2].Status)
	assert.Equal(t, 5, result.Periods[2].Upserted)
	assert.Equal(t, 5, result.Upserted)
	assert.Equal(t, entity.PeriodStatusComplete, stored[2].Status)
}

func TestSyncService_Run_HintForOpenWindowIsNotSkipped(t *testing.T) {
	f := newSyncFixture(t)
	friday := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return friday }
	f.svc.planner.now = f.svc.now

	f.acquire(entity.SyncTypeEmail, completedWeeks(f.userID, "2025-W10", "2025-W11"))

	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, weekStart("2025-W11"), weekStart("2025-W12")).
		Return(nil, nil).Once()
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(0, nil).Once()
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Once()

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{
		UserID:     f.userID,
		SyncType:   entity.SyncTypeEmail,
		PeriodHint: "2025-W11",
	})
	require.NoError(t, err)

	require.Len(t, result.Periods, 1)
	assert.False(t, result.Periods[0].Skipped)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[0].Status)
}

func TestSyncService_Run_HintForClosedWindowIsSkipped(t *testing.T) {
	f := newSyncFixture(t)
	f.acquire(entity.SyncTypeEmail, completedWeeks(f.userID, "2025-W10"))

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{
		UserID:     f.userID,
		SyncType:   entity.SyncTypeEmail,
		PeriodHint: "2025-W10",
	})
	require.NoError(t, err)

	require.Len(t, result.Periods, 1)
	assert.True(t, result.OK)
	assert.True(t, result.Periods[0].Skipped)
	assert.Equal(t, 4, result.Periods[0].Upserted)
}

func TestSyncService_Run_StopsAfterCurrentPeriodOnDeadline(t *testing.T) {
	f := newSyncFixture(t)
	f.acquire(entity.SyncTypeEmail, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.Credentials, _ uuid.UUID, start, _ time.Time) ([]*entity.EmailRecord, error) {
			cancel()

			return emailsFor(start, 3), nil
		}).Once()
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).
		RunAndReturn(func(writeCtx context.Context, records []*entity.EmailRecord) (int, error) {
			assert.NoError(t, writeCtx.Err(), "writes outlive the caller's deadline")

			return len(records), nil
		}).Once()
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Once()

	result, err := f.svc.Run(ctx, usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Equal(t, 3, result.Upserted)
	require.Len(t, result.Periods, 3)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[0].Status)
	assert.Equal(t, entity.PeriodStatusIdle, result.Periods[1].Status)
	assert.Contains(t, result.Periods[1].Error, "not started")
	assert.Equal(t, entity.PeriodStatusError, f.lastHead().Status)
}

func TestSyncService_Run_StopsWhenHeadIsTakenOver(t *testing.T) {
	f := newSyncFixture(t)

	tracker := mockUsecase.NewMockProgressTracker(t)
	f.svc.tracker = tracker
	tracker.EXPECT().TryStartRun(mock.Anything, f.userID, entity.SyncTypeEmail, mock.Anything).Return(true, nil)
	tracker.EXPECT().Periods(mock.Anything, f.userID, entity.SyncTypeEmail).Return(nil, nil)
	tracker.EXPECT().SetPeriodStatus(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error {
			period.Apply(patch)

			return nil
		})
	f.tokenStore.EXPECT().GetValidAccessTokenOrThrow(mock.Anything, f.userID).Return("a1", nil)

	var heldBy uuid.UUID
	tracker.EXPECT().SetHeadStatus(mock.Anything, f.userID, entity.SyncTypeEmail, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ entity.SyncType, runID uuid.UUID, _ entity.HeadPatch) error {
			heldBy = runID

			return repository.ErrHeadNotHeld
		})

	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(0, nil).Once()
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Once()

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})
	require.NoError(t, err)

	assert.Equal(t, result.RunID, heldBy, "head writes are scoped to the run")
	assert.False(t, result.OK)
	require.Len(t, result.Periods, 3)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[0].Status)
	assert.Contains(t, result.Periods[1].Error, repository.ErrHeadNotHeld.Error())
	assert.Contains(t, result.Periods[2].Error, "not started")
}

func TestSyncService_Run_AlreadyRunning(t *testing.T) {
	f := newSyncFixture(t)
	f.tracker.EXPECT().TryStartRun(mock.Anything, f.userID, entity.SyncTypeCalendar, mock.Anything).Return(false, nil)

	_, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeCalendar})

	assert.ErrorIs(t, err, domainerrors.ErrSyncAlreadyRunning)
	assert.Empty(t, f.heads)
}

func TestSyncService_Run_NoValidToken(t *testing.T) {
	f := newSyncFixture(t)
	f.tracker.EXPECT().TryStartRun(mock.Anything, f.userID, entity.SyncTypeEmail, mock.Anything).Return(true, nil)
	f.tokenStore.EXPECT().GetValidAccessTokenOrThrow(mock.Anything, f.userID).Return("", domainerrors.ErrNoValidToken)

	_, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail})

	assert.ErrorIs(t, err, domainerrors.ErrNoValidToken)
	assert.Equal(t, entity.PeriodStatusError, f.lastHead().Status)
	assert.NotEmpty(t, f.messagesAt(entity.MessageLevelError))
}

func TestSyncService_Run_InvalidHint(t *testing.T) {
	f := newSyncFixture(t)

	_, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail, PeriodHint: "last-week"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPeriodHint)
}

func TestSyncService_Run_MatcherFailureDoesNotFailPeriod(t *testing.T) {
	f := newSyncFixture(t)
	f.acquire(entity.SyncTypeCalendar, nil)

	f.calendar.EXPECT().FetchEvents(mock.Anything, mock.Anything, f.userID, "primary", mock.Anything, mock.Anything).
		Return([]*entity.CalendarEvent{{ProviderID: "evt1", CalendarID: "primary"}}, nil).Once()
	f.recordRepo.EXPECT().UpsertEvents(mock.Anything, mock.Anything).Return(1, nil).Once()
	f.matchRepo.EXPECT().MatchEventsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything, "primary").
		Return(0, errors.New("people table unavailable")).Once()

	result, err := f.svc.Run(context.Background(), usecase.SyncRequest{
		UserID:     f.userID,
		SyncType:   entity.SyncTypeCalendar,
		PeriodHint: "primary:2025-03",
	})
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, entity.PeriodStatusComplete, result.Periods[0].Status)
	assert.Equal(t, 1, result.Upserted)
	assert.Len(t, f.messagesAt(entity.MessageLevelError), 1)
}

func TestSyncService_Run_CredentialsRefreshThroughLock(t *testing.T) {
	f := newSyncFixture(t)
	f.acquire(entity.SyncTypeEmail, nil)

	f.refresher.EXPECT().RefreshIfCurrent(mock.Anything, f.userID, "a1").Return("a2", nil).Once()
	f.mail.EXPECT().FetchMessages(mock.Anything, mock.Anything, f.userID, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, creds *service.Credentials, _ uuid.UUID, _, _ time.Time) ([]*entity.EmailRecord, error) {
			assert.Equal(t, "a1", creds.AccessToken())
			token, err := creds.Refresh(ctx)
			require.NoError(t, err)
			assert.Equal(t, "a2", token)

			return nil, nil
		}).Once()
	f.recordRepo.EXPECT().UpsertEmails(mock.Anything, mock.Anything).Return(0, nil).Once()
	f.matchRepo.EXPECT().MatchEmailsInRange(mock.Anything, f.userID, mock.Anything, mock.Anything).Return(0, nil).Once()

	_, err := f.svc.Run(context.Background(), usecase.SyncRequest{UserID: f.userID, SyncType: entity.SyncTypeEmail, PeriodHint: "2025-W11"})
	require.NoError(t, err)
}

func TestSyncService_Status(t *testing.T) {
	f := newSyncFixture(t)
	f.tracker.EXPECT().Head(mock.Anything, f.userID, entity.SyncTypeEmail).Return(nil, repository.ErrHeadNotFound)
	f.tracker.EXPECT().Periods(mock.Anything, f.userID, entity.SyncTypeEmail).Return(nil, nil)

	status, err := f.svc.Status(context.Background(), f.userID, entity.SyncTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodStatusIdle, status.Head.Status)
	assert.Empty(t, status.Periods)

	_, err = f.svc.Status(context.Background(), f.userID, entity.SyncType("drive"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSyncType)
}

func TestSyncService_Schedule(t *testing.T) {
	f := newSyncFixture(t)
	users := []uuid.UUID{uuid.New(), uuid.New()}
	f.tokenRepo.EXPECT().ListUserIDs(mock.Anything).Return(users, nil)

	f.publisher.EXPECT().PublishSyncRequested(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.SyncRequestedEvent) error {
			assert.Equal(t, "req-1", event.RequestID)
			assert.Equal(t, "scheduler", event.Source)
			if event.UserID == users[1].String() && event.SyncType == "calendar" {
				return errors.New("topic unavailable")
			}

			return nil
		}).Times(4)

	published, err := f.svc.Schedule(context.Background(), "req-1")

	assert.Equal(t, 3, published)
	assert.Error(t, err)
}
