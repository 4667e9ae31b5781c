package matching_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/condo/internal/matching"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "SPEI DEPTO 101", matching.Normalize("  spei\tdepto   101 "))
	assert.Equal(t, "", matching.Normalize(" \n "))
}

func TestService_Suggest(t *testing.T) {
	tenantID := uuid.New()
	unitID := uuid.New()

	tests := []struct {
		name      string
		raw       string
		setupMock func(m *matching.MockRepository)
		wantUnit  uuid.UUID
		wantFound bool
	}{
		{
			name: "Match",
			raw:  "spei recibido depto 101 ana lopez",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindUnit(gomock.Any(), tenantID, "SPEI RECIBIDO DEPTO 101 ANA LOPEZ").Return(unitID, true, nil)
			},
			wantUnit:  unitID,
			wantFound: true,
		},
		{
			name: "NoMatch",
			raw:  "DEPOSITO EFECTIVO",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindUnit(gomock.Any(), tenantID, "DEPOSITO EFECTIVO").Return(uuid.Nil, false, nil)
			},
		},
		{
			name: "BlankSkipsLookup",
			raw:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := matching.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := matching.NewService(repo, matching.NewMockUnits(ctrl))

			got, found, err := svc.Suggest(context.Background(), tenantID, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantUnit, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	tenantID := uuid.New()
	unitID := uuid.New()

	t.Run("StoresNormalizedPattern", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := matching.NewMockRepository(ctrl)
		units := matching.NewMockUnits(ctrl)

		units.EXPECT().Exists(gomock.Any(), tenantID, unitID).Return(true, nil)
		repo.EXPECT().UpsertMapping(gomock.Any(), tenantID, "ANA LOPEZ", unitID).Return(nil)

		err := matching.NewService(repo, units).Learn(context.Background(), tenantID, " ana  lopez", unitID)
		assert.NoError(t, err)
	})

	t.Run("UnitFromOtherTenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		units := matching.NewMockUnits(ctrl)

		units.EXPECT().Exists(gomock.Any(), tenantID, unitID).Return(false, nil)

		err := matching.NewService(matching.NewMockRepository(ctrl), units).Learn(context.Background(), tenantID, "ANA", unitID)
		assert.ErrorIs(t, err, matching.ErrUnitNotFound)
	})

	t.Run("EmptyPattern", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		err := matching.NewService(matching.NewMockRepository(ctrl), matching.NewMockUnits(ctrl)).
			Learn(context.Background(), tenantID, " ", unitID)
		assert.ErrorIs(t, err, matching.ErrPatternRequired)
	})
}
