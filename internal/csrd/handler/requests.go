package handler

import (
	"strings"

	"portail-rse/internal/csrd/models"
	dErrors "portail-rse/pkg/domain-errors"
)

const maxIssueNameLength = 250

func parseCode(raw string) (models.ESRS, error) {
	code, ok := models.ParseESRS(strings.TrimSpace(raw))
	if !ok {
		return "", dErrors.New(dErrors.CodeValidation, "esrs inconnu")
	}
	return code, nil
}

// SelectionRequest replaces the selection of one standard.
type SelectionRequest struct {
	ESRS   string  `json:"esrs"`
	Issues []int64 `json:"enjeux"`

	code models.ESRS
}

func (r *SelectionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	code, err := parseCode(r.ESRS)
	if err != nil {
		return err
	}
	r.code = code
	return nil
}

// IssueRequest creates a custom issue.
type IssueRequest struct {
	ESRS        string `json:"esrs"`
	Name        string `json:"nom"`
	Description string `json:"description"`

	code models.ESRS
}

func (r *IssueRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	code, err := parseCode(r.ESRS)
	if err != nil {
		return err
	}
	r.code = code
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "nom is required")
	}
	if len(r.Name) > maxIssueNameLength {
		return dErrors.New(dErrors.CodeValidation, "nom must be at most 250 characters")
	}
	return nil
}

// MaterialityRequest sets or clears (null) the materiality answer.
type MaterialityRequest struct {
	Material *bool `json:"materiel"`
}

func (r *MaterialityRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// UpdateRequest is a partial update; absent fields are left alone.
type UpdateRequest struct {
	Year          *int    `json:"annee"`
	Description   *string `json:"description"`
	PublishedLink *string `json:"lien_rapport"`
	Locked        *bool   `json:"bloque"`
}

func (r *UpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Year == nil && r.Description == nil && r.PublishedLink == nil && r.Locked == nil {
		return dErrors.New(dErrors.CodeValidation, "at least one field is required")
	}
	if r.PublishedLink != nil {
		link := strings.TrimSpace(*r.PublishedLink)
		r.PublishedLink = &link
	}
	return nil
}

func (r *UpdateRequest) toPatch() models.Patch {
	return models.Patch{
		Year:          r.Year,
		Description:   r.Description,
		PublishedLink: r.PublishedLink,
		Locked:        r.Locked,
	}
}

// PublishRequest carries the link of the published report.
type PublishRequest struct {
	PublishedLink string `json:"lien_rapport"`
}

func (r *PublishRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.PublishedLink = strings.TrimSpace(r.PublishedLink)
	if r.PublishedLink == "" {
		return dErrors.New(dErrors.CodeValidation, "lien_rapport is required")
	}
	return nil
}
