package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/infras/broker"
	brokerMocks "pgms/infras/broker/mocks"
	"pgms/infras/otel/mocks"
	"pgms/infras/s3"
	s3Mocks "pgms/infras/s3/mocks"
	ticketMocks "pgms/internal/domains/ticket/mocks"
	"pgms/internal/domains/ticket/model"
	"pgms/internal/domains/ticket/model/dto"
	"pgms/internal/domains/ticket/service"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
)

type fixture struct {
	repo      *ticketMocks.MockTicket
	storage   *s3Mocks.MockS3
	publisher *brokerMocks.MockPublisher
	svc       service.Ticket
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      ticketMocks.NewMockTicket(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
		publisher: brokerMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.storage, f.publisher, mocks.NewOtel())

	return f
}

func attachment(contentType string, size int64) *dto.Attachment {
	return &dto.Attachment{
		Header: &multipart.FileHeader{
			Filename: "screen.PNG",
			Size:     size,
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		},
	}
}

var request = dto.CreateTicketRequest{Title: "Login fails", Description: "Cannot sign in since morning"}

func TestTicketService_Create(t *testing.T) {
	t.Run("without attachment", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ticket *model.Ticket) error {
				assert.Equal(t, int64(7), ticket.AdminID)
				assert.Nil(t, ticket.AttachmentURL)
				ticket.ID = 2
				ticket.BeforeInsert(time.Now())

				return nil
			})

		res, err := f.svc.Create(context.Background(), 7, request, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.ID)
		assert.Equal(t, model.StatusOpen, res.Status)
		assert.Equal(t, model.PriorityMedium, res.Priority)
	})

	t.Run("with attachment", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().UploadFile(gomock.Any(), "tickets/7", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, fileName string, _ multipart.File, _ *multipart.FileHeader) (string, error) {
				assert.Regexp(t, `^ticket_7_\d+\.png$`, fileName)

				return "https://cdn.example.com/tickets/7/a.png", nil
			})
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(context.Background(), 7, request, attachment("image/png", 1024))
		require.NoError(t, err)
		require.NotNil(t, res.AttachmentURL)
		assert.Equal(t, "https://cdn.example.com/tickets/7/a.png", *res.AttachmentURL)
	})

	t.Run("attachment removed when insert fails", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/tickets/7/a.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		f.storage.EXPECT().ObjectKeyFromURL("https://cdn.example.com/tickets/7/a.png").Return("tickets/7/a.png")
		f.storage.EXPECT().DeleteObject(gomock.Any(), "tickets/7/a.png").Return(nil)

		_, err := f.svc.Create(context.Background(), 7, request, attachment("application/pdf", 1024))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("unsupported attachment", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), 7, request, attachment("application/zip", 10))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("oversized attachment", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), 7, request, attachment("image/png", 6<<20))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage disabled", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", s3.ErrNotConfigured)

		_, err := f.svc.Create(context.Background(), 7, request, attachment("image/png", 10))
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestTicketService_Get(t *testing.T) {
	t.Run("own ticket", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&model.Ticket{ID: 2, AdminID: 7}, nil)

		res, err := f.svc.Get(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.ID)
	})

	t.Run("another account's ticket", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&model.Ticket{ID: 2, AdminID: 8}, nil)

		_, err := f.svc.Get(context.Background(), 7, 2)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing ticket", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, &failure.NotFoundError{Entity: model.EntityName, ID: 2})

		_, err := f.svc.Get(context.Background(), 7, 2)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTicketService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().FindAll(gomock.Any(), gDto.FilterGroup{}).Return([]model.Ticket{
		{ID: 5, Priority: model.PriorityLow},
		{ID: 4, Priority: model.PriorityHigh},
		{ID: 3, Priority: model.PriorityMedium},
		{ID: 2, Priority: model.PriorityHigh},
	}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.FilterGroup{})
	require.NoError(t, err)

	ids := make([]int64, len(res))
	for i, ticket := range res {
		ids[i] = ticket.ID
	}

	assert.Equal(t, []int64{4, 2, 3, 5}, ids)
}

func TestTicketService_Respond(t *testing.T) {
	t.Run("resolves by default and notifies", func(t *testing.T) {
		f := newFixture(t)
		published := make(chan dto.TicketRespondedEvent, 1)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&model.Ticket{ID: 2, AdminID: 7, Title: "Login fails", Status: model.StatusOpen}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().
			Publish(gomock.Any(), broker.EventTicketResponded, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, event any) error {
				published <- event.(dto.TicketRespondedEvent)

				return nil
			})

		res, err := f.svc.Respond(context.Background(), 2, dto.RespondTicketRequest{Response: "Password reset"})
		require.NoError(t, err)
		assert.Equal(t, model.StatusResolved, res.Status)
		require.NotNil(t, res.Response)
		assert.Equal(t, "Password reset", *res.Response)

		select {
		case event := <-published:
			assert.Equal(t, int64(7), event.AdminID)
			assert.Equal(t, model.StatusResolved, event.Status)
		case <-time.After(time.Second):
			t.Fatal("event was not published")
		}
	})

	t.Run("missing ticket", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, &failure.NotFoundError{Entity: model.EntityName, ID: 2})

		_, err := f.svc.Respond(context.Background(), 2, dto.RespondTicketRequest{Response: "x"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
