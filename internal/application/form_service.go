package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/internal/domain/repository"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrInvalidFieldType = errors.New("invalid field type")
	ErrMissingField     = errors.New("required field missing")
)

type FormService struct {
	Repo   repository.FormRepository
	Logger *logrus.Logger
}

func NewFormService(repo repository.FormRepository, logger *logrus.Logger) *FormService {
	return &FormService{Repo: repo, Logger: logger}
}

type FieldInput struct {
	Name     string
	Type     entity.FieldType
	Required bool
}

type CreateFormInput struct {
	Name        string
	Description string
	Fields      []FieldInput
}

type UpdateFormInput struct {
	Name        string
	Description string
}

func (s *FormService) Create(ctx context.Context, in CreateFormInput) (*entity.Form, error) {
	f := &entity.Form{
		Name:        in.Name,
		Description: in.Description,
		Fields:      make([]entity.FormField, 0, len(in.Fields)),
	}
	for _, fld := range in.Fields {
		if !entity.ValidFieldType(fld.Type) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFieldType, fld.Type)
		}
		f.Fields = append(f.Fields, entity.FormField{
			Name:     fld.Name,
			Type:     fld.Type,
			Required: fld.Required,
		})
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FormService) List(ctx context.Context) ([]*entity.Form, error) {
	return s.Repo.List(ctx)
}

func (s *FormService) Get(ctx context.Context, id string) (*entity.Form, error) {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return f, nil
}

// Update changes form metadata; fields are fixed at creation.
func (s *FormService) Update(ctx context.Context, id string, in UpdateFormInput) (*entity.Form, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		f.Name = in.Name
	}
	if in.Description != "" {
		f.Description = in.Description
	}
	if err := s.Repo.Update(ctx, f); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *FormService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFormNotFound
		}
		return err
	}
	return nil
}

// SubmitResponse stores a submission after checking that every required
// field of the form is answered. Answers are keyed by field id.
func (s *FormService) SubmitResponse(ctx context.Context, formID string, answers map[string]any) (*entity.FormResponse, error) {
	f, err := s.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	for _, fld := range f.Fields {
		if !fld.Required {
			continue
		}
		if _, ok := answers[fld.ID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, fld.Name)
		}
	}
	resp := &entity.FormResponse{FormID: formID, Answers: answers}
	if err := s.Repo.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *FormService) ListResponses(ctx context.Context, formID string) ([]*entity.FormResponse, error) {
	if _, err := s.Get(ctx, formID); err != nil {
		return nil, err
	}
	return s.Repo.ListResponses(ctx, formID)
}
