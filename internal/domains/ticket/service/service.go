package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ticket=MockTicketService

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"pgms/infras/broker"
	"pgms/infras/otel"
	"pgms/infras/s3"
	"pgms/internal/domains/ticket/model"
	"pgms/internal/domains/ticket/model/dto"
	"pgms/internal/domains/ticket/repository"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	attachmentDirectory    = "tickets"
	maxAttachmentSizeBytes = 5 << 20
)

var attachmentContentTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

type Ticket interface {
	Create(ctx context.Context, adminID int64, req dto.CreateTicketRequest, attachment *dto.Attachment) (dto.TicketResponse, error)
	GetMine(ctx context.Context, adminID int64) ([]dto.TicketResponse, error)
	// Get returns one of the caller's tickets; another account's ticket is
	// forbidden.
	Get(ctx context.Context, adminID, id int64) (dto.TicketResponse, error)
	// GetAll lists every account's tickets for support, highest priority
	// first and newest first within a priority.
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]dto.TicketResponse, error)
	Respond(ctx context.Context, id int64, req dto.RespondTicketRequest) (dto.TicketResponse, error)
}

type serviceImpl struct {
	repo      repository.Ticket
	storage   s3.S3
	publisher broker.Publisher
	otel      otel.Otel
}

func New(repo repository.Ticket, storage s3.S3, publisher broker.Publisher, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		otel:      otel,
	}
}

func checkAttachment(attachment *dto.Attachment) error {
	contentType := attachment.Header.Header.Get(constant.RequestHeaderContentType)
	if !slices.Contains(attachmentContentTypes, contentType) {
		return failure.BadRequestFromString("attachment must be one of " + strings.Join(attachmentContentTypes, ", "))
	}

	if attachment.Header.Size > maxAttachmentSizeBytes {
		return failure.BadRequestFromString("attachment must not exceed 5 MB")
	}

	return nil
}

func (s *serviceImpl) upload(ctx context.Context, adminID int64, attachment *dto.Attachment) (string, error) {
	fileName := fmt.Sprintf("ticket_%d_%d%s", adminID, timezone.Now().UnixMilli(), strings.ToLower(path.Ext(attachment.Header.Filename)))

	url, err := s.storage.UploadFile(ctx, path.Join(attachmentDirectory, strconv.FormatInt(adminID, 10)), fileName, attachment.File, attachment.Header)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to upload ticket attachment")

		if errors.Is(err, s3.ErrNotConfigured) {
			return "", failure.ServiceUnavailable(err.Error())
		}

		return "", fmt.Errorf("failed to upload ticket attachment: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) Create(ctx context.Context, adminID int64, req dto.CreateTicketRequest, attachment *dto.Attachment) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket := req.ToModel(adminID)

	if attachment != nil {
		if err = checkAttachment(attachment); err != nil {
			return res, err
		}

		url, uploadErr := s.upload(ctx, adminID, attachment)
		if uploadErr != nil {
			return res, uploadErr
		}

		ticket.AttachmentURL = &url
	}

	if err = s.repo.Insert(ctx, &ticket); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to create ticket")

		if ticket.AttachmentURL != nil {
			s.removeAttachment(ctx, *ticket.AttachmentURL)
		}

		return res, fmt.Errorf("failed to create ticket: %w", err)
	}

	res.FromModel(ticket)

	return res, nil
}

func (s *serviceImpl) removeAttachment(ctx context.Context, url string) {
	key := s.storage.ObjectKeyFromURL(url)
	if key == "" {
		return
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove orphaned ticket attachment")
	}
}

func (s *serviceImpl) GetMine(ctx context.Context, adminID int64) (res []dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tickets, err := s.repo.FindByAdmin(ctx, adminID)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to get tickets")

		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	return dto.FromModels(tickets), nil
}

func (s *serviceImpl) Get(ctx context.Context, adminID, id int64) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.AdminID != adminID {
		return res, failure.Forbidden("ticket belongs to another account")
	}

	res.FromModel(*ticket)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res []dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tickets, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tickets")

		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	model.SortForTriage(tickets)

	return dto.FromModels(tickets), nil
}

func (s *serviceImpl) Respond(ctx context.Context, id int64, req dto.RespondTicketRequest) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Respond")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	ticket.Response = &req.Response

	ticket.Status = req.Status
	if ticket.Status == "" {
		ticket.Status = model.StatusResolved
	}

	if err = s.repo.Update(ctx, ticket); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to respond to ticket")

		return res, fmt.Errorf("failed to respond to ticket: %w", err)
	}

	broker.PublishAsync(ctx, s.publisher, broker.EventTicketResponded, dto.TicketRespondedEvent{
		TicketID: ticket.ID,
		AdminID:  ticket.AdminID,
		Title:    ticket.Title,
		Status:   ticket.Status,
		Response: req.Response,
	})

	res.FromModel(*ticket)

	return res, nil
}
