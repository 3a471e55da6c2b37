package google

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	"gsync/internal/domain/service"
	"gsync/internal/infra/archive"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/gmail/v1"
)

const gmailListPageSize = 500

var gmailMetadataHeaders = []string{"From", "To", "Cc", "Subject"}

type gmailSource struct {
	fetcher  *Fetcher
	archive  service.PageArchive
	baseURL  string
	maxPages int
}

// NewGmailSource returns a MailSource reading the user's mailbox through the Gmail REST API.
func NewGmailSource(fetcher *Fetcher, pageArchive service.PageArchive, cfg *config.Config) service.MailSource {
	return &gmailSource{
		fetcher:  fetcher,
		archive:  pageArchive,
		baseURL:  strings.TrimRight(cfg.Sync.GmailBaseURL, "/"),
		maxPages: cfg.Sync.MaxPagesPerPeriod,
	}
}

// FetchMessages lists the message ids received in [start, end) and fetches the
// header metadata of each.
func (s *gmailSource) FetchMessages(ctx context.Context, creds *service.Credentials, userID uuid.UUID, start, end time.Time) ([]*entity.EmailRecord, error) {
	ids, err := s.listMessageIDs(ctx, creds, userID, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]*entity.EmailRecord, 0, len(ids))
	for _, id := range ids {
		var msg gmail.Message
		_, err := s.fetcher.Call(ctx, Request{
			URL:   s.baseURL + "/gmail/v1/users/me/messages/" + url.PathEscape(id),
			Query: url.Values{"format": {"metadata"}, "metadataHeaders": gmailMetadataHeaders},
		}, creds, &msg)
		if err != nil {
			return nil, errors.Wrapf(err, "get message %s", id)
		}

		record := toEmailRecord(userID, &msg)
		// after:/before: have day granularity in some mailboxes; the window is authoritative.
		if record.InternalDate.Before(start) || !record.InternalDate.Before(end) {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *gmailSource) listMessageIDs(ctx context.Context, creds *service.Credentials, userID uuid.UUID, start, end time.Time) ([]string, error) {
	query := "after:" + strconv.FormatInt(start.Unix(), 10) + " before:" + strconv.FormatInt(end.Unix(), 10)
	periodKey := entity.WeekWindow(start).Key

	var ids []string
	pageToken := ""
	for page := 0; page < s.maxPages; page++ {
		params := url.Values{
			"q":          {query},
			"maxResults": {strconv.Itoa(gmailListPageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp gmail.ListMessagesResponse
		body, err := s.fetcher.Call(ctx, Request{
			URL:   s.baseURL + "/gmail/v1/users/me/messages",
			Query: params,
		}, creds, &resp)
		if err != nil {
			return nil, errors.Wrap(err, "list messages")
		}

		if err := s.archive.Put(ctx, archive.PageKey(userID.String(), entity.SyncTypeEmail.String(), periodKey, page), body); err != nil {
			return nil, err
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
		}

		if resp.NextPageToken == "" {
			return ids, nil
		}
		pageToken = resp.NextPageToken
	}

	return nil, errors.Errorf("message listing exceeded %d pages", s.maxPages)
}

func toEmailRecord(userID uuid.UUID, msg *gmail.Message) *entity.EmailRecord {
	record := &entity.EmailRecord{
		UserID:       userID,
		ProviderID:   msg.Id,
		ThreadID:     msg.ThreadId,
		Snippet:      msg.Snippet,
		LabelIDs:     msg.LabelIds,
		InternalDate: time.UnixMilli(msg.InternalDate).UTC(),
	}
	if msg.Payload == nil {
		return record
	}

	for _, header := range msg.Payload.Headers {
		switch strings.ToLower(header.Name) {
		case "from":
			record.From = entity.NormalizeAddress(header.Value)
		case "to":
			record.To = entity.NormalizeAddresses(splitAddressList(header.Value))
		case "cc":
			record.Cc = entity.NormalizeAddresses(splitAddressList(header.Value))
		case "subject":
			record.Subject = header.Value
		}
	}

	return record
}

// splitAddressList splits a header on commas outside quoted display names.
func splitAddressList(value string) []string {
	var (
		parts   []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range value {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case r == ',' && !quoted:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(parts, current.String())
}
