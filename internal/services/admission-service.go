package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sekolahdev/admission_service/internal/domain"
	"github.com/sekolahdev/admission_service/internal/dto"
	"github.com/sekolahdev/admission_service/internal/helper"
	"github.com/sekolahdev/admission_service/internal/interfaces"
	"github.com/sekolahdev/admission_service/internal/repository"
	"github.com/sekolahdev/admission_service/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type AdmissionService interface {
	// Auth
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(input dto.UserLogin) (*domain.User, error)
	IsAdmin(userID uint) (bool, error)

	// Applicant
	GetMyApplication(userID uint) (*dto.ApplicationResponse, error)
	SaveDraft(userID uint, values map[string]string) (*dto.ApplicationResponse, error)
	SubmitApplication(userID uint, values map[string]string) (*dto.ApplicationResponse, error)

	// Staff: triage
	ListApplications() ([]dto.ApplicationSummaryRow, error)
	GetApplication(appID uint) (*dto.ApplicationDetailResponse, error)
	DecideApplication(appID uint, adminID uint, decision string, note string) error
	DeleteApplication(appID uint) error
	Summary() (*dto.SummaryResponse, error)

	// Staff: form schema & settings
	GetFormConfig() (*dto.ConfigResponse, error)
	UpdateConfig(input dto.ConfigUpdateRequest) (*dto.ConfigResponse, error)
	AddFormField(input dto.FieldInput) (*domain.FormField, error)
	RemoveFormField(fieldID string) error
}

type admissionService struct {
	users  repository.UserRepository
	apps   repository.ApplicationRepository
	config repository.ConfigRepository
	auth   helper.Auth

	// messaging
	producer interfaces.ProducerHandler
}

func NewAdmissionService(
	users repository.UserRepository,
	apps repository.ApplicationRepository,
	config repository.ConfigRepository,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
) AdmissionService {
	return &admissionService{
		users:    users,
		apps:     apps,
		config:   config,
		producer: producer,
		auth:     auth,
	}
}

// AUTH

func (s *admissionService) Register(input dto.RegisterRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	username := strings.TrimSpace(strings.ToLower(input.Username))
	password := strings.TrimSpace(input.Password)

	if fullName == "" || username == "" || password == "" {
		return nil, errors.New("invalid inputs")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	cfg, err := s.config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.RegistrationOpen {
		return nil, domain.ErrRegistrationClosed
	}

	if existing, err := s.users.FindUserByUsername(username); err == nil && existing != nil && existing.ID != 0 {
		return nil, fmt.Errorf("%w: username %q", domain.ErrDuplicate, username)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	usr, err := s.users.CreateUser(&domain.User{
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleStudent,
	})
	if err != nil {
		return nil, err
	}

	// every applicant gets exactly one application, opened at registration
	app := &domain.Application{
		UserID:         usr.ID,
		FullName:       usr.FullName,
		SubmissionDate: time.Now(),
		Status:         domain.StatusNew,
		Values:         domain.FieldValues{},
	}
	if err := s.apps.Create(app); err != nil {
		return nil, err
	}

	return usr, nil
}

func (s *admissionService) Login(input dto.UserLogin) (*domain.User, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))
	password := strings.TrimSpace(input.Password)

	if username == "" || password == "" {
		return nil, errors.New("invalid username or password")
	}

	user, err := s.users.FindUserByUsername(username)
	if err != nil || user == nil || user.ID == 0 {
		return nil, errors.New("invalid username or password")
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, errors.New("invalid username or password")
	}

	return user, nil
}

func (s *admissionService) IsAdmin(userID uint) (bool, error) {
	if userID == 0 {
		return false, errors.New("invalid user id")
	}
	user, err := s.users.FindUserById(userID)
	if err != nil {
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// APPLICANT

func (s *admissionService) GetMyApplication(userID uint) (*dto.ApplicationResponse, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	app, err := s.apps.FindByOwner(userID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// SaveDraft merges the incoming values into the applicant's draft without
// touching status. Required-field checks are skipped on purpose; drafts may
// be partial.
func (s *admissionService) SaveDraft(userID uint, values map[string]string) (*dto.ApplicationResponse, error) {
	app, cfg, err := s.editableApplication(userID)
	if err != nil {
		return nil, err
	}

	if err := ingestValues(cfg.FormFields, values); err != nil {
		return nil, err
	}
	mergeValues(app, values)

	if err := s.apps.Save(app); err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// SubmitApplication merges values, validates them against the current schema
// and moves the application into review.
func (s *admissionService) SubmitApplication(userID uint, values map[string]string) (*dto.ApplicationResponse, error) {
	app, cfg, err := s.editableApplication(userID)
	if err != nil {
		return nil, err
	}

	if err := ingestValues(cfg.FormFields, values); err != nil {
		return nil, err
	}
	mergeValues(app, values)

	if err := domain.ValidateForSubmission(cfg.FormFields, app.Values); err != nil {
		return nil, err
	}

	next, err := domain.Submit(app.Status)
	if err != nil {
		return nil, err
	}
	old := app.Status
	app.Status = next

	if err := s.apps.Save(app); err != nil {
		return nil, err
	}

	s.publishStatusChanged(app.ID, old, next, "")
	return toApplicationResponse(app), nil
}

func (s *admissionService) editableApplication(userID uint) (*domain.Application, *domain.AppConfig, error) {
	if userID == 0 {
		return nil, nil, errors.New("invalid user id")
	}
	app, err := s.apps.FindByOwner(userID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.CanEdit(app.Status) {
		return nil, nil, fmt.Errorf("%w: status %q", domain.ErrApplicationLocked, app.Status)
	}
	cfg, err := s.config.Load()
	if err != nil {
		return nil, nil, err
	}
	return app, cfg, nil
}

// ingestValues gates incoming values before they reach the application.
// File-typed fields may not exceed the encoded size limit; keys the schema no
// longer knows pass through untouched.
func ingestValues(fields domain.FieldList, values map[string]string) error {
	for id, v := range values {
		f, ok := fields.FindField(id)
		if !ok {
			continue
		}
		if f.Type == domain.FieldTypeFile && len(v) > domain.MaxEncodedFileSize {
			return fmt.Errorf("%w: field %q", domain.ErrPayloadTooLarge, id)
		}
	}
	return nil
}

func mergeValues(app *domain.Application, values map[string]string) {
	if app.Values == nil {
		app.Values = domain.FieldValues{}
	}
	for id, v := range values {
		app.Values[id] = v
	}
}

// STAFF: TRIAGE

func (s *admissionService) ListApplications() ([]dto.ApplicationSummaryRow, error) {
	apps, err := s.apps.ListAll()
	if err != nil {
		return nil, err
	}

	out := make([]dto.ApplicationSummaryRow, 0, len(apps))
	for _, a := range apps {
		out = append(out, dto.ApplicationSummaryRow{
			ID:             a.ID,
			UserID:         a.UserID,
			FullName:       a.FullName,
			SubmissionDate: a.SubmissionDate.Format(time.RFC3339),
			Status:         string(a.Status),
		})
	}
	return out, nil
}

func (s *admissionService) GetApplication(appID uint) (*dto.ApplicationDetailResponse, error) {
	app, err := s.apps.FindByID(appID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config.Load()
	if err != nil {
		return nil, err
	}
	return toDetailResponse(app, cfg.FormFields), nil
}

// DecideApplication applies a staff verdict. Repeating the verdict that
// produced the current status is a no-op; other transitions out of a
// terminal status fail with ErrInvalidTransition.
func (s *admissionService) DecideApplication(appID uint, adminID uint, decision string, note string) error {
	if adminID == 0 {
		return errors.New("invalid admin id")
	}
	d, err := domain.ParseDecision(decision)
	if err != nil {
		return err
	}

	app, err := s.apps.FindByID(appID)
	if err != nil {
		return err
	}

	next, changed, err := domain.Decide(app.Status, d)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	old := app.Status
	now := time.Now()
	app.Status = next
	app.AdminNote = strings.TrimSpace(note)
	app.ReviewedBy = &adminID
	app.ReviewedAt = &now

	if err := s.apps.Save(app); err != nil {
		return err
	}

	s.publishStatusChanged(app.ID, old, next, app.AdminNote)
	return nil
}

func (s *admissionService) DeleteApplication(appID uint) error {
	return s.apps.Delete(appID)
}

func (s *admissionService) Summary() (*dto.SummaryResponse, error) {
	counts, err := s.apps.CountByStatus()
	if err != nil {
		return nil, err
	}

	out := &dto.SummaryResponse{
		New:           counts[domain.StatusNew],
		PendingReview: counts[domain.StatusPendingReview],
		Accepted:      counts[domain.StatusAccepted],
		NeedsRevision: counts[domain.StatusNeedsRevision],
		Rejected:      counts[domain.StatusRejected],
	}
	out.Total = out.New + out.PendingReview + out.Accepted + out.NeedsRevision + out.Rejected
	return out, nil
}

// STAFF: FORM SCHEMA & SETTINGS

func (s *admissionService) GetFormConfig() (*dto.ConfigResponse, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

func (s *admissionService) UpdateConfig(input dto.ConfigUpdateRequest) (*dto.ConfigResponse, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return nil, err
	}

	if input.SheetURL != nil {
		cfg.SheetURL = strings.TrimSpace(*input.SheetURL)
	}
	if input.RegistrationOpen != nil {
		cfg.RegistrationOpen = *input.RegistrationOpen
	}

	if err := s.config.Save(cfg); err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

func (s *admissionService) AddFormField(input dto.FieldInput) (*domain.FormField, error) {
	cfg, err := s.config.Load()
	if err != nil {
		return nil, err
	}

	fields, err := domain.AddField(cfg.FormFields, domain.FormField{
		ID:          input.ID,
		Label:       input.Label,
		Type:        domain.FieldType(input.Type),
		Required:    input.Required,
		Placeholder: strings.TrimSpace(input.Placeholder),
	})
	if err != nil {
		return nil, err
	}

	cfg.FormFields = fields
	if err := s.config.Save(cfg); err != nil {
		return nil, err
	}

	added := fields[len(fields)-1]
	return &added, nil
}

// RemoveFormField drops the field from the schema only. Values stored under
// its id in existing applications are left in place.
func (s *admissionService) RemoveFormField(fieldID string) error {
	cfg, err := s.config.Load()
	if err != nil {
		return err
	}

	fields, err := domain.RemoveField(cfg.FormFields, fieldID)
	if err != nil {
		return err
	}

	cfg.FormFields = fields
	return s.config.Save(cfg)
}

// EVENTS

// publishStatusChanged notifies the external sync collaborator. Best effort:
// a broker failure is logged and never fails the transition.
func (s *admissionService) publishStatusChanged(appID uint, old, next domain.ApplicationStatus, note string) {
	if s.producer == nil {
		return
	}

	event := dto.StatusChangedEvent{
		EventID:       uuid.NewString(),
		ApplicationID: appID,
		OldStatus:     string(old),
		NewStatus:     string(next),
		Note:          note,
		OccurredAt:    time.Now().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal status event error: %v", err)
		return
	}

	if err := s.producer.PublishMessage([]byte("application.status_changed"), payload); err != nil {
		log.Printf("publish status event error: %v", err)
	}
}

// RESPONSE BUILDERS

func toApplicationResponse(app *domain.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:             app.ID,
		FullName:       app.FullName,
		SubmissionDate: app.SubmissionDate.Format(time.RFC3339),
		Status:         string(app.Status),
		AdminNote:      app.AdminNote,
		Values:         app.Values,
		Card:           domain.PresentStatus(app.Status, app.AdminNote),
	}
}

func toDetailResponse(app *domain.Application, fields domain.FieldList) *dto.ApplicationDetailResponse {
	views := make([]dto.FieldValueView, 0, len(fields))
	for _, f := range fields {
		v := app.Values[f.ID]
		view := dto.FieldValueView{
			Field:   f,
			Present: strings.TrimSpace(v) != "",
		}
		if f.Type == domain.FieldTypeFile {
			view.IsFile = true
			view.MediaKind = utils.MediaKind(v)
			view.IsImage = utils.IsImagePayload(v)
			view.Value = v
		} else {
			view.Value = v
		}
		views = append(views, view)
	}

	var reviewedAt *string
	if app.ReviewedAt != nil {
		s := app.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &s
	}

	return &dto.ApplicationDetailResponse{
		ID:             app.ID,
		UserID:         app.UserID,
		FullName:       app.FullName,
		SubmissionDate: app.SubmissionDate.Format(time.RFC3339),
		Status:         string(app.Status),
		AdminNote:      app.AdminNote,
		ReviewedAt:     reviewedAt,
		Fields:         views,
		Card:           domain.PresentStatus(app.Status, app.AdminNote),
	}
}

func toConfigResponse(cfg *domain.AppConfig) *dto.ConfigResponse {
	return &dto.ConfigResponse{
		SheetURL:         cfg.SheetURL,
		RegistrationOpen: cfg.RegistrationOpen,
		FormFields:       cfg.FormFields,
	}
}
