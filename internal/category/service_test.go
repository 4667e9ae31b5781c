package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/condo/internal/category"
)

func TestCashFilter(t *testing.T) {
	virtualID := uuid.New()
	otherID := uuid.New()

	f := category.NewCashFilter(virtualID)

	assert.False(t, f.IsRealCash(virtualID, category.TypeExpense))
	assert.True(t, f.IsRealCash(otherID, category.TypeExpense))
	assert.True(t, f.IsRealCash(virtualID, category.TypeIncome), "income is never excluded")
	assert.Equal(t, []string{virtualID.String()}, f.VirtualIDs())

	var empty category.CashFilter
	assert.True(t, empty.Empty())
	assert.True(t, empty.IsRealCash(virtualID, category.TypeExpense))
	assert.Empty(t, empty.VirtualIDs())
}

func TestService_Create(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   error
	}{
		{
			name:   "DefaultsToNormalPurpose",
			params: category.CreateParams{Name: " Jardinería ", Type: category.TypeExpense, IsCommonExpense: true},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						assert.Equal(t, "Jardinería", c.Name)
						assert.Equal(t, category.PurposeNormal, c.Purpose)
						assert.Equal(t, tenantID, *c.TenantID)
						c.ID = uuid.New()

						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  category.CreateParams{Type: category.TypeExpense},
			wantErr: category.ErrNameRequired,
		},
		{
			name:    "InvalidType",
			params:  category.CreateParams{Name: "X", Type: "transfer"},
			wantErr: category.ErrInvalidType,
		},
		{
			name:    "VirtualIssuanceMustBeExpense",
			params:  category.CreateParams{Name: "X", Type: category.TypeIncome, Purpose: category.PurposeVirtualIssuance},
			wantErr: category.ErrInvalidPurpose,
		},
		{
			name:    "MaintenanceFeeMustBeIncome",
			params:  category.CreateParams{Name: "X", Type: category.TypeExpense, Purpose: category.PurposeMaintenanceFee},
			wantErr: category.ErrInvalidPurpose,
		},
		{
			name:    "UnknownPurpose",
			params:  category.CreateParams{Name: "X", Type: category.TypeExpense, Purpose: "other"},
			wantErr: category.ErrInvalidPurpose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := category.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := category.NewService(repo).Create(context.Background(), tenantID, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_CashFilter_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	tenantID := uuid.New()
	virtualID := uuid.New()

	repo.EXPECT().VirtualIssuanceIDs(gomock.Any(), tenantID).Return([]uuid.UUID{virtualID}, nil).Times(1)

	for range 3 {
		f, err := svc.CashFilter(context.Background(), tenantID)
		require.NoError(t, err)
		assert.False(t, f.IsRealCash(virtualID, category.TypeExpense))
	}
}

func TestService_CashFilter_NoVirtualCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	tenantID := uuid.New()
	repo.EXPECT().VirtualIssuanceIDs(gomock.Any(), tenantID).Return(nil, nil)

	f, err := svc.CashFilter(context.Background(), tenantID)
	require.NoError(t, err)
	assert.True(t, f.Empty())
	assert.True(t, f.IsRealCash(uuid.New(), category.TypeExpense))
}

func TestService_CashFilter_InvalidatedByNewVirtualCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)
	svc := category.NewService(repo)

	tenantID := uuid.New()
	created := uuid.New()

	gomock.InOrder(
		repo.EXPECT().VirtualIssuanceIDs(gomock.Any(), tenantID).Return(nil, nil),
		repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *category.Category) error {
				c.ID = created
				return nil
			}),
		repo.EXPECT().VirtualIssuanceIDs(gomock.Any(), tenantID).Return([]uuid.UUID{created}, nil),
	)

	f, err := svc.CashFilter(context.Background(), tenantID)
	require.NoError(t, err)
	assert.True(t, f.Empty())

	_, err = svc.Create(context.Background(), tenantID, category.CreateParams{
		Name:    "Emisión de Cuota",
		Type:    category.TypeExpense,
		Purpose: category.PurposeVirtualIssuance,
	})
	require.NoError(t, err)

	f, err = svc.CashFilter(context.Background(), tenantID)
	require.NoError(t, err)
	assert.False(t, f.IsRealCash(created, category.TypeExpense))
}

func TestService_CashFilter_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	repo.EXPECT().VirtualIssuanceIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := category.NewService(repo).CashFilter(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestCategory_VisibleTo(t *testing.T) {
	tenantID := uuid.New()

	system := &category.Category{}
	owned := &category.Category{TenantID: &tenantID}

	assert.True(t, system.IsSystem())
	assert.True(t, system.VisibleTo(uuid.New()))
	assert.True(t, owned.VisibleTo(tenantID))
	assert.False(t, owned.VisibleTo(uuid.New()))
}
