package adapters

import (
	"context"

	entreprise "portail-rse/internal/entreprise/models"
	entrepriseService "portail-rse/internal/entreprise/service"
	"portail-rse/internal/reglementation/ports"
)

// EntrepriseAdapter is an in-process adapter that implements
// ports.CompanyPort by calling the entreprise service directly.
type EntrepriseAdapter struct {
	service *entrepriseService.Service
}

func NewEntrepriseAdapter(service *entrepriseService.Service) ports.CompanyPort {
	return &EntrepriseAdapter{service: service}
}

func (a *EntrepriseAdapter) Latest(ctx context.Context, siren string) (*entreprise.Company, *entreprise.Snapshot, error) {
	q, err := a.service.LatestQualification(ctx, siren)
	if err != nil {
		return nil, nil, err
	}
	return q.Company, q.Snapshot, nil
}
