package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/infras/otel/mocks"
	staffMocks "pgms/internal/domains/staff/mocks"
	"pgms/internal/domains/staff/model"
	"pgms/internal/domains/staff/model/dto"
	"pgms/internal/domains/staff/service"
	"pgms/internal/tenancy"
	"pgms/shared/failure"
)

const tenantID tenancy.TenantID = 3

func strPtr(v string) *string {
	return &v
}

func TestStaffService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	req := dto.CreateStaffRequest{Username: "ravi", Email: "ravi@example.com", Role: strPtr("WARDEN")}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
		wantField string
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().FindByUsername(gomock.Any(), tenantID, "ravi").Return(nil, false, nil)
				mockRepo.EXPECT().FindByEmail(gomock.Any(), tenantID, "ravi@example.com").Return(nil, false, nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), tenantID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ tenancy.TenantID, staff *model.Staff) (*model.Staff, error) {
						staff.ID = 5

						return staff, nil
					})
			},
		},
		{
			name: "duplicate username",
			setupMock: func() {
				mockRepo.EXPECT().FindByUsername(gomock.Any(), tenantID, "ravi").Return(&model.Staff{ID: 1}, true, nil)
			},
			wantField: model.FieldUsername,
		},
		{
			name: "duplicate email",
			setupMock: func() {
				mockRepo.EXPECT().FindByUsername(gomock.Any(), tenantID, "ravi").Return(nil, false, nil)
				mockRepo.EXPECT().FindByEmail(gomock.Any(), tenantID, "ravi@example.com").Return(&model.Staff{ID: 1}, true, nil)
			},
			wantField: model.FieldEmail,
		},
		{
			name: "lookup failure",
			setupMock: func() {
				mockRepo.EXPECT().FindByUsername(gomock.Any(), tenantID, "ravi").Return(nil, false, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tenantID, req)

			switch {
			case tt.wantField != "":
				var duplicate *failure.DuplicateError
				require.ErrorAs(t, err, &duplicate)
				assert.Equal(t, tt.wantField, duplicate.Field)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(5), res.ID)
				assert.Equal(t, "WARDEN", *res.Role)
			}
		})
	}
}

func TestStaffService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	stored := func() *model.Staff {
		return &model.Staff{ID: 5, Username: "ravi", Email: "ravi@example.com"}
	}

	t.Run("changes role and keeps identity", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(5)).Return(stored(), nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenancy.TenantID, staff *model.Staff) (*model.Staff, error) {
				return staff, nil
			})

		res, err := svc.Update(context.Background(), tenantID, 5, dto.UpdateStaffRequest{Role: strPtr("COOK"), Username: strPtr("ravi")})
		require.NoError(t, err)
		assert.Equal(t, "ravi", res.Username)
		assert.Equal(t, "COOK", *res.Role)
	})

	t.Run("email taken", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(5)).Return(stored(), nil)
		mockRepo.EXPECT().FindByEmail(gomock.Any(), tenantID, "meera@example.com").Return(&model.Staff{ID: 6}, true, nil)

		_, err := svc.Update(context.Background(), tenantID, 5, dto.UpdateStaffRequest{Email: strPtr("meera@example.com")})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestStaffService_GetByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().FindByRole(gomock.Any(), tenantID, "COOK").Return([]model.Staff{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}, nil)

	res, err := svc.GetByRole(context.Background(), tenantID, "COOK")
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestStaffService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(9)).Return(nil, &failure.NotFoundError{Entity: "staff", ID: 9})

	err := svc.Delete(context.Background(), tenantID, 9)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
