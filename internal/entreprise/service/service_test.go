package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"portail-rse/internal/audit"
	"portail-rse/internal/entreprise/models"
	"portail-rse/internal/entreprise/service/mocks"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/sentinel"
	"portail-rse/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockAuditPublisher
	service   *Service
	ctx       context.Context
	now       time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.publisher = mocks.NewMockAuditPublisher(s.ctrl)
	s.service = New(s.store, WithAuditPublisher(s.publisher))
	s.now = time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) groupCompany() *models.Company {
	return &models.Company{
		Siren:                "123456789",
		BelongsToGroup:       models.Ptr(true),
		ConsolidatedAccounts: models.Ptr(false),
	}
}

func (s *ServiceSuite) TestUpsertCompany() {
	s.Run("normalizes and stamps", func() {
		c := &models.Company{
			Siren:                "123456789",
			Name:                 "  ACME  ",
			BelongsToGroup:       models.Ptr(false),
			IsParentCompany:      models.Ptr(true),
			ConsolidatedAccounts: models.Ptr(true),
		}
		s.store.EXPECT().UpsertCompany(gomock.Any(), c).Return(nil)
		s.publisher.EXPECT().Emit(gomock.Any(), audit.Event{Action: audit.ActionCompanyUpserted, Siren: "123456789"}).Return(nil)

		got, err := s.service.UpsertCompany(s.ctx, c)
		s.Require().NoError(err)
		s.Equal("ACME", got.Name)
		s.Nil(got.IsParentCompany)
		s.Nil(got.ConsolidatedAccounts)
		s.Equal(s.now, got.UpdatedAt)
	})

	s.Run("rejects a malformed siren before touching the store", func() {
		_, err := s.service.UpsertCompany(s.ctx, &models.Company{Siren: "12345"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("audit failures do not fail the call", func() {
		c := &models.Company{Siren: "123456789"}
		s.store.EXPECT().UpsertCompany(gomock.Any(), c).Return(nil)
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("down"))

		_, err := s.service.UpsertCompany(s.ctx, c)
		s.NoError(err)
	})
}

func (s *ServiceSuite) TestCreateSnapshot() {
	s.Run("drops consolidated figures when accounts are not consolidated", func() {
		snap := &models.Snapshot{
			Siren:                    "123456789",
			Year:                     2024,
			WorkforceGroup:           models.Ptr(models.Workforce500To4999),
			BalanceSheetConsolidated: models.Ptr(models.Balance100MPlus),
		}
		s.store.EXPECT().FindCompany(gomock.Any(), "123456789").Return(s.groupCompany(), nil)
		s.store.EXPECT().CreateSnapshot(gomock.Any(), snap).Return(nil)
		s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.service.CreateSnapshot(s.ctx, snap)
		s.Require().NoError(err)
		s.NotNil(got.WorkforceGroup)
		s.Nil(got.BalanceSheetConsolidated)
		s.Equal(s.now, got.CreatedAt)
	})

	s.Run("inconsistent brackets are a validation error", func() {
		snap := &models.Snapshot{
			Siren:              "123456789",
			Year:               2024,
			Workforce:          models.Ptr(models.Workforce50To249),
			WorkforcePermanent: models.Ptr(models.Workforce500To4999),
		}
		s.store.EXPECT().FindCompany(gomock.Any(), "123456789").Return(s.groupCompany(), nil)

		_, err := s.service.CreateSnapshot(s.ctx, snap)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("a recorded year is a conflict", func() {
		snap := &models.Snapshot{Siren: "123456789", Year: 2024}
		s.store.EXPECT().FindCompany(gomock.Any(), "123456789").Return(s.groupCompany(), nil)
		s.store.EXPECT().CreateSnapshot(gomock.Any(), snap).Return(sentinel.ErrAlreadyUsed)

		_, err := s.service.CreateSnapshot(s.ctx, snap)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("unknown company", func() {
		s.store.EXPECT().FindCompany(gomock.Any(), "999999999").Return(nil, sentinel.ErrNotFound)

		_, err := s.service.CreateSnapshot(s.ctx, &models.Snapshot{Siren: "999999999", Year: 2024})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestLatestQualification() {
	s.Run("company without snapshot", func() {
		s.store.EXPECT().FindCompany(gomock.Any(), "123456789").Return(s.groupCompany(), nil)
		s.store.EXPECT().LatestSnapshot(gomock.Any(), "123456789").Return(nil, sentinel.ErrNotFound)

		q, err := s.service.LatestQualification(s.ctx, "123456789")
		s.Require().NoError(err)
		s.NotNil(q.Company)
		s.Nil(q.Snapshot)
	})

	s.Run("store failure is internal", func() {
		s.store.EXPECT().FindCompany(gomock.Any(), "123456789").Return(s.groupCompany(), nil)
		s.store.EXPECT().LatestSnapshot(gomock.Any(), "123456789").Return(nil, errors.New("boom"))

		_, err := s.service.LatestQualification(s.ctx, "123456789")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
