package bankincome_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/memstore"
)

func newStore(seed ...*bankincome.BankIncome) *memstore.Store[bankincome.BankIncome] {
	return memstore.New(func(b *bankincome.BankIncome) string { return b.ID }, bankincome.ErrNotFound, seed...)
}

func TestService_Create(t *testing.T) {
	recordDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name          string
		params        bankincome.CreateParams
		wantConfirmed *time.Time
	}

	tests := []testCase{
		{
			name:   "Pending",
			params: bankincome.CreateParams{Date: recordDate, Amount: decimal.NewFromInt(1800000), Status: bankincome.StatusPending},
		},
		{
			name:          "ConfirmedUsesRecordDate",
			params:        bankincome.CreateParams{Date: recordDate, Amount: decimal.NewFromInt(1), Status: bankincome.StatusConfirmed},
			wantConfirmed: &recordDate,
		},
		{
			name:   "Rejected",
			params: bankincome.CreateParams{Date: recordDate, Status: bankincome.StatusRejected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bankincome.NewMockRepository(ctrl)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			got, err := bankincome.NewService(repo).Create(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.params.Status, got.Status)

			if tt.wantConfirmed == nil {
				assert.Nil(t, got.ConfirmedDate)
				return
			}

			require.NotNil(t, got.ConfirmedDate)
			assert.True(t, tt.wantConfirmed.Equal(*got.ConfirmedDate))
		})
	}
}

func TestService_Confirm(t *testing.T) {
	today := time.Date(2024, 3, 5, 16, 30, 0, 0, time.Local)

	type testCase struct {
		name      string
		setupMock func(m *bankincome.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *bankincome.MockRepository) {
				m.EXPECT().Update(gomock.Any(), "2", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, fn func(*bankincome.BankIncome) error) (*bankincome.BankIncome, error) {
						b := bankincome.Seed()[1]
						if err := fn(b); err != nil {
							return nil, err
						}

						return b, nil
					},
				)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *bankincome.MockRepository) {
				m.EXPECT().Update(gomock.Any(), "2", gomock.Any()).Return(nil, bankincome.ErrNotFound)
			},
			wantErr: bankincome.ErrNotFound,
		},
		{
			name: "RepoError",
			setupMock: func(m *bankincome.MockRepository) {
				m.EXPECT().Update(gomock.Any(), "2", gomock.Any()).Return(nil, errors.New("store error"))
			},
			wantErr: errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bankincome.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := bankincome.NewService(repo).Confirm(context.Background(), "2", today)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, bankincome.StatusConfirmed, got.Status)
			require.NotNil(t, got.ConfirmedDate)
			assert.Equal(t, "2024-03-05", got.ConfirmedDate.Format(time.DateOnly))
		})
	}
}

func TestConfirmPendingIncome(t *testing.T) {
	ctx := context.Background()
	svc := bankincome.NewService(newStore(bankincome.Seed()...))
	today := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	got, err := svc.Confirm(ctx, "2", today)
	require.NoError(t, err)
	assert.Equal(t, bankincome.StatusConfirmed, got.Status)
	assert.Equal(t, "2024-02-01", got.ConfirmedDate.Format(time.DateOnly))
	assert.Equal(t, "2024-01-14", got.Date.Format(time.DateOnly))

	list, err := svc.List(ctx, bankincome.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, bankincome.StatusConfirmed, list[1].Status)

	_, err = svc.Confirm(ctx, "2", today)
	assert.ErrorIs(t, err, bankincome.ErrNotPending)

	_, err = svc.Confirm(ctx, "1", today)
	assert.ErrorIs(t, err, bankincome.ErrNotPending)

	_, err = svc.Confirm(ctx, "missing", today)
	assert.ErrorIs(t, err, bankincome.ErrNotFound)
}

func TestRegisterThenConfirm(t *testing.T) {
	ctx := context.Background()
	svc := bankincome.NewService(newStore())

	d := bankincome.NewDraft()
	require.NoError(t, d.Set(bankincome.FieldDate, "2024-01-20"))
	require.NoError(t, d.Set(bankincome.FieldBank, "Nequi"))
	require.NoError(t, d.Set(bankincome.FieldAccountNumber, "****-9999"))
	require.NoError(t, d.Set(bankincome.FieldAmount, "750000"))
	require.NoError(t, d.Set(bankincome.FieldConcept, "Anticipo"))
	require.NoError(t, d.Set(bankincome.FieldReference, "NQ-1"))

	params, err := d.Params()
	require.NoError(t, err)

	created, err := svc.Create(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, bankincome.StatusPending, created.Status)
	assert.Nil(t, created.ConfirmedDate)

	confirmed, err := svc.Confirm(ctx, created.ID, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-22", confirmed.ConfirmedDate.Format(time.DateOnly))
}
