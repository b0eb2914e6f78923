package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerServiceFixtures struct {
	service         *ledgerService
	userRepo        *mockRepo.MockUserRepository
	transactionRepo *mockRepo.MockTransactionRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestLedgerService(t *testing.T) *ledgerServiceFixtures {
	fx := &ledgerServiceFixtures{
		userRepo:        mockRepo.NewMockUserRepository(t),
		transactionRepo: mockRepo.NewMockTransactionRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewLedgerService(LedgerServiceParams{
		TxManager:       mockRepo.NewMockTransactionManager(t),
		UserRepo:        fx.userRepo,
		TransactionRepo: fx.transactionRepo,
		Publisher:       fx.publisher,
		Logger:          newDiscardLogger(),
	}).(*ledgerService)

	return fx
}

func TestLedgerService_RequestDeposit_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"0", "-0.01", "-100"} {
		t.Run(amount, func(t *testing.T) {
			fx := createTestLedgerService(t)

			tx, err := fx.service.RequestDeposit(context.Background(), uuid.New(), dec(amount))

			assert.Nil(t, tx)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidAmount))
		})
	}
}

func TestLedgerService_RequestDeposit_CreatesPendingRequest(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.transactionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) { tx.ID = uuid.New() }).
		Return(nil)
	expectEvent(fx.publisher, entity.EventTransactionRequested)

	tx, err := fx.service.RequestDeposit(ctx, userID, dec("20.50"))

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeDeposit, tx.Type)
	assert.Equal(t, entity.ReviewStatusPending, tx.Status)
	assert.True(t, tx.Amount.Equal(dec("20.50")))
}

func TestLedgerService_RequestWithdrawal_LeavesBalanceUntouched(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("100.00")}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.transactionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
	expectEvent(fx.publisher, entity.EventTransactionRequested)

	tx, err := fx.service.RequestWithdrawal(ctx, user.ID, dec("50.00"))

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeWithdrawal, tx.Type)
	assert.Equal(t, entity.ReviewStatusPending, tx.Status)
	assert.True(t, tx.Amount.Equal(dec("50.00")))
	fx.userRepo.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_RequestWithdrawal_InsufficientBalance(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("10.00")}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	tx, err := fx.service.RequestWithdrawal(ctx, user.ID, dec("10.01"))

	assert.Nil(t, tx)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	fx.transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLedgerService_RequestWithdrawal_InvalidAmountSkipsLookup(t *testing.T) {
	fx := createTestLedgerService(t)

	tx, err := fx.service.RequestWithdrawal(context.Background(), uuid.New(), dec("0"))

	assert.Nil(t, tx)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAmount))
}

func TestLedgerService_DebitForOrder(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		total       string
		repoBalance string
		repoErr     error
		callsRepo   bool
		wantErr     error
		wantBalance string
	}{
		{name: "exact balance", balance: "25.00", total: "25.00", repoBalance: "0.00", callsRepo: true, wantBalance: "0.00"},
		{name: "keeps cents", balance: "100.10", total: "33.33", repoBalance: "66.77", callsRepo: true, wantBalance: "66.77"},
		{name: "stale view rejected", balance: "10.00", total: "10.01", wantErr: domainerrors.ErrInsufficientBalance},
		{name: "concurrent debit lost the race", balance: "50.00", total: "40.00", repoErr: domainerrors.ErrInsufficientBalance, callsRepo: true, wantErr: domainerrors.ErrInsufficientBalance},
		{name: "zero total", balance: "50.00", total: "0", wantErr: domainerrors.ErrInvalidAmount},
		{name: "user gone", balance: "50.00", total: "1.00", repoErr: repository.ErrUserNotFound, callsRepo: true, wantErr: domainerrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLedgerService(t)
			ctx := context.Background()
			userID := uuid.New()

			if tt.callsRepo {
				var repoBalance = dec("0")
				if tt.repoBalance != "" {
					repoBalance = dec(tt.repoBalance)
				}
				fx.userRepo.EXPECT().DebitBalance(ctx, userID, dec(tt.total)).Return(repoBalance, tt.repoErr)
			}

			got, err := fx.service.DebitForOrder(ctx, userID, dec(tt.balance), dec(tt.total))

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.wantBalance)), "got %s", got)
		})
	}
}

func TestLedgerService_DebitForCategoryPurchase_InsufficientBalance(t *testing.T) {
	fx := createTestLedgerService(t)

	_, err := fx.service.DebitForCategoryPurchase(context.Background(), uuid.New(), dec("30.00"), dec("50.00"))

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
}

func TestLedgerService_GetWallet(t *testing.T) {
	fx := createTestLedgerService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Balance: dec("12.34")}
	txs := []*entity.Transaction{{ID: uuid.New(), UserID: user.ID}}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.transactionRepo.EXPECT().ListByUser(ctx, user.ID).Return(txs, nil)

	wallet, err := fx.service.GetWallet(ctx, user.ID)

	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(dec("12.34")))
	assert.Equal(t, txs, wallet.Transactions)
}
