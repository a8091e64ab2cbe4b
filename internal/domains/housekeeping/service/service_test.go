package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	hkMocks "inn/internal/domains/housekeeping/mocks"
	"inn/internal/domains/housekeeping/model"
	"inn/internal/domains/housekeeping/service"
	"inn/shared/constant"
)

func TestHousekeepingService_EnsureCheckoutTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hkMocks.NewMockHousekeeping(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Topics.HousekeepingTask = "housekeeping.tasks"

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "creates task when none open",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Task{})).
					DoAndReturn(func(_ context.Context, task model.Task) error {
						assert.Equal(t, "room-1", task.RoomID)
						assert.Equal(t, model.CleaningTypeCheckout, task.CleaningType)
						assert.Equal(t, model.PriorityHigh, task.Priority)
						assert.Equal(t, model.StatusPending, task.Status)
						assert.Equal(t, model.CheckoutNotes, task.Notes)

						return nil
					})

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "housekeeping.tasks", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "open task already exists",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "lost race, unique violation tolerated",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr: false,
		},
		{
			name: "exist check error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.EnsureCheckoutTask(ctx, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
