package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"portail-rse/internal/entreprise/models"
	"portail-rse/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) company(siren string) *models.Company {
	return &models.Company{Siren: siren, Name: "ACME", UpdatedAt: time.Now()}
}

func (s *InMemorySuite) TestCompanies() {
	s.Run("upsert then find", func() {
		c := s.company("123456789")
		s.Require().NoError(s.store.UpsertCompany(s.ctx, c))

		c.Name = "ACME 2"
		s.Require().NoError(s.store.UpsertCompany(s.ctx, c))

		found, err := s.store.FindCompany(s.ctx, "123456789")
		s.Require().NoError(err)
		s.Equal("ACME 2", found.Name)
	})

	s.Run("unknown siren", func() {
		_, err := s.store.FindCompany(s.ctx, "000000000")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestSnapshots() {
	s.Require().NoError(s.store.UpsertCompany(s.ctx, s.company("123456789")))

	s.Run("rejects a second snapshot for the same year", func() {
		snap := &models.Snapshot{Siren: "123456789", Year: 2023}
		s.Require().NoError(s.store.CreateSnapshot(s.ctx, snap))
		s.ErrorIs(s.store.CreateSnapshot(s.ctx, snap), sentinel.ErrAlreadyUsed)
	})

	s.Run("rejects a snapshot for an unknown company", func() {
		err := s.store.CreateSnapshot(s.ctx, &models.Snapshot{Siren: "999999999", Year: 2023})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("latest returns the highest year", func() {
		s.Require().NoError(s.store.CreateSnapshot(s.ctx, &models.Snapshot{Siren: "123456789", Year: 2021}))
		s.Require().NoError(s.store.CreateSnapshot(s.ctx, &models.Snapshot{Siren: "123456789", Year: 2024}))

		latest, err := s.store.LatestSnapshot(s.ctx, "123456789")
		s.Require().NoError(err)
		s.Equal(2024, latest.Year)

		found, err := s.store.FindSnapshot(s.ctx, "123456789", 2021)
		s.Require().NoError(err)
		s.Equal(2021, found.Year)
	})

	s.Run("no snapshot", func() {
		_, err := s.store.LatestSnapshot(s.ctx, "555555555")
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindSnapshot(s.ctx, "123456789", 1999)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
