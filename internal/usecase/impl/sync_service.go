package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gsync/config"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/constants"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	"gsync/internal/usecase"
	"gsync/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SyncServiceParams holds dependencies for the sync orchestrator, injected by Fx
type SyncServiceParams struct {
	fx.In

	TokenStore  usecase.TokenStore
	Refresher   usecase.TokenRefresher
	Tracker     usecase.ProgressTracker
	TokenRepo   repository.TokenRepository
	RecordRepo  repository.RecordRepository
	MatchRepo   repository.MatchRepository
	MessageRepo repository.MessageRepository
	Mail        service.MailSource
	Calendar    service.CalendarSource
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// syncService implements the SyncUsecase interface.
type syncService struct {
	tokenStore  usecase.TokenStore
	refresher   usecase.TokenRefresher
	tracker     usecase.ProgressTracker
	tokenRepo   repository.TokenRepository
	recordRepo  repository.RecordRepository
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
	mail        service.MailSource
	calendar    service.CalendarSource
	publisher   service.EventPublisher
	planner     *periodPlanner
	now         func() time.Time
	logger      *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		tokenStore:  params.TokenStore,
		refresher:   params.Refresher,
		tracker:     params.Tracker,
		tokenRepo:   params.TokenRepo,
		recordRepo:  params.RecordRepo,
		matchRepo:   params.MatchRepo,
		messageRepo: params.MessageRepo,
		mail:        params.Mail,
		calendar:    params.Calendar,
		publisher:   params.Publisher,
		planner:     newPeriodPlanner(params.Config.Sync, time.Now),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// syncRun is the state of one Run call.
type syncRun struct {
	userID    uuid.UUID
	syncType  entity.SyncType
	runID     uuid.UUID
	startedAt time.Time
	logger    *slog.Logger
	headLost  bool // Set once another run has taken the head over.
}

// stopCause reports why no further period may start, or nil.
func (run *syncRun) stopCause(ctx context.Context) error {
	if run.headLost {
		return repository.ErrHeadNotHeld
	}

	return ctx.Err()
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Run drives every planned period of one sync type in chronological order.
// A failed period is recorded and the run moves on. ctx bounds fetching; once a
// period's fetch has returned its writes run to completion, and no new period
// starts after ctx is done.
func (srv *syncService) Run(ctx context.Context, req usecase.SyncRequest) (*usecase.SyncResult, error) {
	windows, err := srv.planner.Plan(req.SyncType, req.PeriodHint)
	if err != nil {
		return nil, err
	}

	run := &syncRun{
		userID:   req.UserID,
		syncType: req.SyncType,
		runID:    uuid.New(),
	}
	run.startedAt = srv.now()
	run.logger = srv.log(ctx).With(
		slog.String("user_id", run.userID.String()),
		slog.String("sync_type", run.syncType.String()),
		slog.String("run_id", run.runID.String()),
	)

	acquired, err := srv.tracker.TryStartRun(ctx, run.userID, run.syncType, run.runID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		run.logger.InfoContext(ctx, "Sync already running, request rejected")

		return nil, domainerrors.ErrSyncAlreadyRunning
	}

	// Checkpoint writes must land even after the caller gives up.
	writeCtx := context.WithoutCancel(ctx)
	srv.message(writeCtx, run, entity.MessageLevelMilestone, fmt.Sprintf("%s sync started (%d periods planned)", run.syncType, len(windows)))

	accessToken, err := srv.tokenStore.GetValidAccessTokenOrThrow(ctx, run.userID)
	if err != nil {
		srv.message(writeCtx, run, entity.MessageLevelError, "no valid Google token; reconnect the account")
		srv.finishHead(writeCtx, run, err.Error())

		return nil, err
	}

	creds := service.NewCredentials(accessToken, func(ctx context.Context, observed string) (string, error) {
		return srv.refresher.RefreshIfCurrent(ctx, run.userID, observed)
	})

	periods, err := srv.checkpoints(ctx, run, windows)
	if err != nil {
		srv.finishHead(writeCtx, run, err.Error())

		return nil, err
	}

	result := &usecase.SyncResult{RunID: run.runID, OK: true}
	for i, period := range periods {
		if period.IsSettledAt(run.startedAt) {
			result.Periods = append(result.Periods, usecase.PeriodResult{
				Key:        period.PeriodKey,
				CalendarID: period.CalendarID,
				Status:     period.Status,
				Upserted:   period.Upserted,
				Skipped:    true,
			})

			continue
		}

		if cause := run.stopCause(ctx); cause != nil {
			run.logger.WarnContext(writeCtx, "Run stopped before all periods were processed",
				slog.Int("remaining", len(periods)-i),
				slog.Any("error", cause),
			)
			srv.message(writeCtx, run, entity.MessageLevelError,
				fmt.Sprintf("stopped before %s: %v", period.PeriodKey, cause))
			result.Periods = append(result.Periods, pendingResults(periods[i:], run.startedAt, cause)...)
			result.OK = false

			break
		}

		pr := srv.syncPeriod(ctx, writeCtx, run, creds, period)
		result.Periods = append(result.Periods, pr)
		result.Upserted += pr.Upserted
		result.Matched += pr.Matched
		if pr.Status != entity.PeriodStatusComplete {
			result.OK = false
		}
	}

	summary := ""
	if !result.OK {
		summary = summarizeFailures(result.Periods)
	}
	srv.finishHead(writeCtx, run, summary)
	srv.message(writeCtx, run, entity.MessageLevelMilestone,
		fmt.Sprintf("%s sync finished in %s: %d upserted, %d matched",
			run.syncType, util.FormatDuration(srv.now().Sub(run.startedAt)), result.Upserted, result.Matched))

	run.logger.InfoContext(writeCtx, "Sync run finished",
		slog.Bool("ok", result.OK),
		slog.Int("upserted", result.Upserted),
		slog.Int("matched", result.Matched),
	)

	return result, nil
}

// checkpoints merges planned windows with their stored rows, keeping plan order.
func (srv *syncService) checkpoints(ctx context.Context, run *syncRun, windows []entity.PeriodWindow) ([]*entity.SyncPeriod, error) {
	stored, err := srv.tracker.Periods(ctx, run.userID, run.syncType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sync periods")
	}

	byKey := make(map[string]*entity.SyncPeriod, len(stored))
	for _, period := range stored {
		byKey[period.PeriodKey] = period
	}

	periods := make([]*entity.SyncPeriod, 0, len(windows))
	for _, window := range windows {
		if period, ok := byKey[window.Key]; ok {
			periods = append(periods, period)

			continue
		}
		periods = append(periods, window.NewPeriod(run.userID))
	}

	return periods, nil
}

// syncPeriod fetches, stores and matches one period. Its outcome is recorded on
// the period row and never returned as an error.
func (srv *syncService) syncPeriod(
	ctx, writeCtx context.Context,
	run *syncRun,
	creds *service.Credentials,
	period *entity.SyncPeriod,
) usecase.PeriodResult {
	logger := run.logger.With(slog.String("period_key", period.PeriodKey))
	pr := usecase.PeriodResult{Key: period.PeriodKey, CalendarID: period.CalendarID}

	startedAt := srv.now().UTC()
	noError := ""
	err := srv.tracker.SetPeriodStatus(writeCtx, period, entity.PeriodPatch{
		Status:       entity.PeriodStatusRunning,
		ErrorMessage: &noError,
		StartedAt:    &startedAt,
	})
	if err != nil {
		logger.ErrorContext(writeCtx, "Failed to mark period running", slog.Any("error", err))
		pr.Status = period.Status
		pr.Error = err.Error()

		return pr
	}
	srv.heartbeat(writeCtx, run)

	upserted, err := srv.fetchAndStore(ctx, writeCtx, run, creds, period)
	if err != nil {
		message := err.Error()
		logger.WarnContext(writeCtx, "Period failed", slog.Any("error", err), slog.Int("upserted", upserted))
		if statusErr := srv.tracker.SetPeriodStatus(writeCtx, period, entity.PeriodPatch{
			Status:       entity.PeriodStatusError,
			ErrorMessage: &message,
			Upserted:     &upserted,
		}); statusErr != nil {
			logger.ErrorContext(writeCtx, "Failed to mark period error", slog.Any("error", statusErr))
		}
		srv.message(writeCtx, run, entity.MessageLevelError, fmt.Sprintf("%s failed: %s", period.PeriodKey, message))

		pr.Status = entity.PeriodStatusError
		pr.Error = message
		pr.Upserted = upserted

		return pr
	}

	completedAt := srv.now().UTC()
	err = srv.tracker.SetPeriodStatus(writeCtx, period, entity.PeriodPatch{
		Status:      entity.PeriodStatusComplete,
		Upserted:    &upserted,
		CompletedAt: &completedAt,
	})
	if err != nil {
		logger.ErrorContext(writeCtx, "Failed to mark period complete", slog.Any("error", err))
		pr.Status = period.Status
		pr.Error = err.Error()
		pr.Upserted = upserted

		return pr
	}

	pr.Status = entity.PeriodStatusComplete
	pr.Upserted = upserted
	pr.Matched = srv.match(writeCtx, run, period)

	srv.message(writeCtx, run, entity.MessageLevelInfo,
		fmt.Sprintf("%s complete: %d upserted, %d matched", period.PeriodKey, pr.Upserted, pr.Matched))

	return pr
}

func (srv *syncService) fetchAndStore(
	ctx, writeCtx context.Context,
	run *syncRun,
	creds *service.Credentials,
	period *entity.SyncPeriod,
) (int, error) {
	switch run.syncType {
	case entity.SyncTypeEmail:
		records, err := srv.mail.FetchMessages(ctx, creds, run.userID, period.RangeStart, period.RangeEnd)
		if err != nil {
			return 0, errors.Wrap(err, "fetch messages")
		}

		return srv.recordRepo.UpsertEmails(writeCtx, records)
	case entity.SyncTypeCalendar:
		events, err := srv.calendar.FetchEvents(ctx, creds, run.userID, period.CalendarID, period.RangeStart, period.RangeEnd)
		if err != nil {
			return 0, errors.Wrap(err, "fetch events")
		}

		return srv.recordRepo.UpsertEvents(writeCtx, events)
	default:
		return 0, domainerrors.ErrInvalidSyncType
	}
}

// match links the period's records to people. Failures are reported, not escalated.
func (srv *syncService) match(ctx context.Context, run *syncRun, period *entity.SyncPeriod) int {
	var (
		matched int
		err     error
	)
	switch run.syncType {
	case entity.SyncTypeEmail:
		matched, err = srv.matchRepo.MatchEmailsInRange(ctx, run.userID, period.RangeStart, period.RangeEnd)
	case entity.SyncTypeCalendar:
		matched, err = srv.matchRepo.MatchEventsInRange(ctx, run.userID, period.RangeStart, period.RangeEnd, period.CalendarID)
	}
	if err != nil {
		run.logger.WarnContext(ctx, "Matching failed",
			slog.String("period_key", period.PeriodKey),
			slog.Any("error", err),
		)
		srv.message(ctx, run, entity.MessageLevelError, fmt.Sprintf("%s matching failed: %v", period.PeriodKey, err))

		return 0
	}

	return matched
}

// heartbeat refreshes the head lease so long runs are not taken over as stale.
// A run whose head was taken over starts no further periods.
func (srv *syncService) heartbeat(ctx context.Context, run *syncRun) {
	err := srv.tracker.SetHeadStatus(ctx, run.userID, run.syncType, run.runID, entity.HeadPatch{Status: entity.PeriodStatusRunning})
	switch {
	case errors.Is(err, repository.ErrHeadNotHeld):
		run.headLost = true
		run.logger.WarnContext(ctx, "Sync head taken over by another run")
	case err != nil:
		run.logger.WarnContext(ctx, "Failed to refresh sync head lease", slog.Any("error", err))
	}
}

// finishHead releases the head. An empty summary marks the run complete.
func (srv *syncService) finishHead(ctx context.Context, run *syncRun, summary string) {
	completedAt := srv.now().UTC()
	patch := entity.HeadPatch{
		Status:       entity.PeriodStatusComplete,
		ErrorMessage: &summary,
		CompletedAt:  &completedAt,
	}
	if summary != "" {
		patch.Status = entity.PeriodStatusError
	}

	err := srv.tracker.SetHeadStatus(ctx, run.userID, run.syncType, run.runID, patch)
	switch {
	case errors.Is(err, repository.ErrHeadNotHeld):
		run.logger.InfoContext(ctx, "Sync head already held by another run, leaving it untouched")
	case err != nil:
		run.logger.ErrorContext(ctx, "Failed to release sync head", slog.Any("error", err))
	}
}

func (srv *syncService) message(ctx context.Context, run *syncRun, level entity.MessageLevel, text string) {
	err := srv.messageRepo.Append(ctx, &entity.SyncMessage{
		ID:        uuid.New(),
		UserID:    run.userID,
		RunID:     run.runID,
		SyncType:  run.syncType,
		Level:     level,
		Message:   text,
		CreatedAt: srv.now().UTC(),
	})
	if err != nil {
		run.logger.WarnContext(ctx, "Failed to append sync message", slog.Any("error", err))
	}
}

func pendingResults(periods []*entity.SyncPeriod, runStart time.Time, cause error) []usecase.PeriodResult {
	results := make([]usecase.PeriodResult, 0, len(periods))
	for _, period := range periods {
		pr := usecase.PeriodResult{
			Key:        period.PeriodKey,
			CalendarID: period.CalendarID,
			Status:     period.Status,
			Upserted:   period.Upserted,
		}
		if period.IsSettledAt(runStart) {
			pr.Skipped = true
		} else {
			pr.Error = "not started: " + cause.Error()
			pr.Upserted = 0
		}
		results = append(results, pr)
	}

	return results
}

func summarizeFailures(results []usecase.PeriodResult) string {
	failed := 0
	for _, pr := range results {
		if pr.Status != entity.PeriodStatusComplete {
			failed++
		}
	}

	return fmt.Sprintf("%d of %d periods did not complete", failed, len(results))
}

// Status returns the head and its periods. A user who never synced reads as idle.
func (srv *syncService) Status(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*usecase.SyncStatus, error) {
	if !syncType.IsValid() {
		return nil, domainerrors.ErrInvalidSyncType
	}

	head, err := srv.tracker.Head(ctx, userID, syncType)
	if err != nil {
		if !errors.Is(err, repository.ErrHeadNotFound) {
			return nil, errors.Wrap(err, "failed to load sync head")
		}
		head = &entity.SyncHead{UserID: userID, SyncType: syncType, Status: entity.PeriodStatusIdle}
	}

	periods, err := srv.tracker.Periods(ctx, userID, syncType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sync periods")
	}

	return &usecase.SyncStatus{Head: head, Periods: periods}, nil
}

// Schedule publishes a sync request for every connected user and sync type. A
// failed publish does not stop the fan-out; all failures are returned joined.
func (srv *syncService) Schedule(ctx context.Context, requestID string) (int, error) {
	userIDs, err := srv.tokenRepo.ListUserIDs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list connected users")
	}

	published := 0
	var errs []error
	for _, userID := range userIDs {
		for _, syncType := range entity.SyncTypes {
			err := srv.publisher.PublishSyncRequested(ctx, &service.SyncRequestedEvent{
				RequestID: requestID,
				UserID:    userID.String(),
				SyncType:  syncType.String(),
				Source:    constants.SyncSourceScheduler,
			})
			if err != nil {
				errs = append(errs, errors.Wrapf(err, "publish %s for %s", syncType, userID))

				continue
			}
			published++
		}
	}

	srv.log(ctx).InfoContext(ctx, "Scheduled sync fan-out",
		slog.Int("users", len(userIDs)),
		slog.Int("published", published),
		slog.Int("failed", len(errs)),
	)

	return published, errors.Join(errs...)
}
