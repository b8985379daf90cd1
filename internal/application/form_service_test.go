package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/internal/domain/repository"
)

type fakeFormRepo struct {
	forms     map[string]*entity.Form
	responses map[string][]*entity.FormResponse
	seq       int
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: map[string]*entity.Form{}, responses: map[string][]*entity.FormResponse{}}
}

func (f *fakeFormRepo) nextID() string {
	f.seq++
	return "id-" + strconv.Itoa(f.seq)
}

func (f *fakeFormRepo) Create(ctx context.Context, form *entity.Form) error {
	form.ID = f.nextID()
	for i := range form.Fields {
		form.Fields[i].ID = f.nextID()
		form.Fields[i].FormID = form.ID
	}
	f.forms[form.ID] = form
	return nil
}

func (f *fakeFormRepo) List(ctx context.Context) ([]*entity.Form, error) {
	out := []*entity.Form{}
	for _, form := range f.forms {
		out = append(out, form)
	}
	return out, nil
}

func (f *fakeFormRepo) GetByID(ctx context.Context, id string) (*entity.Form, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return form, nil
}

func (f *fakeFormRepo) Update(ctx context.Context, form *entity.Form) error {
	if _, ok := f.forms[form.ID]; !ok {
		return repository.ErrNotFound
	}
	f.forms[form.ID] = form
	return nil
}

func (f *fakeFormRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.forms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.forms, id)
	return nil
}

func (f *fakeFormRepo) CreateResponse(ctx context.Context, r *entity.FormResponse) error {
	r.ID = f.nextID()
	f.responses[r.FormID] = append(f.responses[r.FormID], r)
	return nil
}

func (f *fakeFormRepo) ListResponses(ctx context.Context, formID string) ([]*entity.FormResponse, error) {
	return f.responses[formID], nil
}

func newFormService() (*FormService, *fakeFormRepo) {
	repo := newFakeFormRepo()
	return NewFormService(repo, nil), repo
}

func createSurvey(t *testing.T, svc *FormService) *entity.Form {
	t.Helper()
	f, err := svc.Create(context.Background(), CreateFormInput{
		Name: "Survey",
		Fields: []FieldInput{
			{Name: "Comment", Type: entity.FieldTypeText, Required: true},
			{Name: "Rating", Type: entity.FieldTypeNumber},
		},
	})
	require.NoError(t, err)
	return f
}

func TestFormCreate_InvalidFieldType(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	_, err := svc.Create(context.Background(), CreateFormInput{
		Name:   "Survey",
		Fields: []FieldInput{{Name: "X", Type: "CHECKBOX"}},
	})
	require.ErrorIs(t, err, ErrInvalidFieldType)
}

func TestFormGet_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrFormNotFound)
}

func TestFormUpdate_MetadataOnly(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	f := createSurvey(t, svc)

	got, err := svc.Update(context.Background(), f.ID, UpdateFormInput{Name: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Len(t, got.Fields, 2)
}

func TestSubmitResponse_MissingRequiredField(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	f := createSurvey(t, svc)
	ratingID := f.Fields[1].ID

	_, err := svc.SubmitResponse(context.Background(), f.ID, map[string]any{ratingID: 5})
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "Comment")
}

func TestSubmitResponse_Success(t *testing.T) {
	t.Parallel()

	svc, repo := newFormService()
	f := createSurvey(t, svc)
	commentID := f.Fields[0].ID

	resp, err := svc.SubmitResponse(context.Background(), f.ID, map[string]any{commentID: "nice"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Len(t, repo.responses[f.ID], 1)
}

func TestSubmitResponse_UnknownForm(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	_, err := svc.SubmitResponse(context.Background(), "missing", map[string]any{})
	require.ErrorIs(t, err, ErrFormNotFound)
}

func TestListResponses_UnknownForm(t *testing.T) {
	t.Parallel()

	svc, _ := newFormService()
	_, err := svc.ListResponses(context.Background(), "missing")
	require.ErrorIs(t, err, ErrFormNotFound)
}
