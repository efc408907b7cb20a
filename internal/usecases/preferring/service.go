package preferring

import (
	"context"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/accolades/ads-dashboard-api/infrastructure/repository"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Preferrer interface {
	GetPreferences(ctx context.Context, email string) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, email string, req domain.UpdatePreferencesRequest) (*domain.Preferences, error)
	ToggleAccountVisibility(ctx context.Context, email, refreshToken, accountID string) (*VisibilityResult, error)
	SetAllAccountsVisible(ctx context.Context, email, refreshToken string, visible bool) (*VisibilityResult, error)
	ApplyVisibility(ctx context.Context, email string, summary *domain.AccountsSummary) error
	ResolveDateRange(id, startDate, endDate string) (*ResolvedDateRange, error)
	DateRangePresets() []domain.DateRangePreset
	SelectClient(ctx context.Context, email string) (*ClientSelection, error)
}

// VisibilityResult indica se o toggle mudou algo; ocultar a última conta visível não muda
type VisibilityResult struct {
	Changed           bool     `json:"changed"`
	VisibleAccountIDs []string `json:"visibleAccountIds"`
}

type ResolvedDateRange struct {
	ID string `json:"id"`
	domain.DateRange
}

type ClientSelection struct {
	Clients  []domain.ClientConfiguration `json:"clients"`
	Selected *domain.ClientConfiguration  `json:"selected"`
}

type Service struct {
	prefRepo  repository.PreferenceRepository
	googleAds googleads.GoogleAdsIntegrator
	tabler    tabling.Tabler
	now       func() time.Time
}

func NewService(prefRepo repository.PreferenceRepository, googleAds googleads.GoogleAdsIntegrator, tabler tabling.Tabler) Preferrer {
	return &Service{
		prefRepo:  prefRepo,
		googleAds: googleAds,
		tabler:    tabler,
		now:       time.Now,
	}
}

// GetPreferences devolve as preferências salvas ou o padrão do usuário
func (s *Service) GetPreferences(ctx context.Context, email string) (*domain.Preferences, error) {
	prefs, err := s.prefRepo.GetPreferences(ctx, email)
	if err != nil {
		return nil, NewPreferenceError(errors.Wrapf(err, "erro ao ler preferências de %s", email), apiErrors.ErrDatabaseOperation, "")
	}

	if prefs == nil {
		return domain.DefaultPreferences(email), nil
	}

	if !domain.IsKnownDateRange(prefs.DateRangeID) {
		prefs.DateRangeID = domain.DefaultDateRangeID
	}

	return prefs, nil
}

func (s *Service) save(ctx context.Context, prefs *domain.Preferences) error {
	prefs.UpdatedAt = s.now().UTC()
	if err := s.prefRepo.SavePreferences(ctx, prefs); err != nil {
		logrus.WithError(err).WithField("user_email", prefs.UserEmail).Error("preferring: erro ao salvar preferências")
		return NewPreferenceError(ErrStorage, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// UpdatePreferences aplica somente os campos presentes na requisição
func (s *Service) UpdatePreferences(ctx context.Context, email string, req domain.UpdatePreferencesRequest) (*domain.Preferences, error) {
	prefs, err := s.GetPreferences(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.DateRangeID != nil {
		if !domain.IsKnownDateRange(*req.DateRangeID) {
			return nil, NewPreferenceError(ErrUnknownDateRange, apiErrors.ErrInvalidFormat, *req.DateRangeID)
		}
		prefs.DateRangeID = *req.DateRangeID
	}

	if req.CustomDateRange != nil {
		custom, err := domain.NewCustomDateRange(req.CustomDateRange.StartDate, req.CustomDateRange.EndDate)
		if err != nil {
			return nil, NewPreferenceError(err, apiErrors.ErrInvalidFormat, "")
		}
		prefs.CustomDateRange = custom
	}

	if prefs.DateRangeID == domain.DateRangeCustom && prefs.CustomDateRange.IsZero() {
		return nil, NewPreferenceError(domain.ErrInvalidDateRange, apiErrors.ErrMissingRequiredData, "custom_date_range")
	}

	if req.VisibleAccountIDs != nil {
		prefs.VisibleAccountIDs = domain.NewVisibleAccounts(nil, req.VisibleAccountIDs).IDs()
	}

	if req.SidebarCollapsed != nil {
		prefs.SidebarCollapsed = *req.SidebarCollapsed
	}

	if req.SelectedClientID != nil {
		prefs.SelectedClientID = *req.SelectedClientID
	}

	if err := s.save(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

func (s *Service) accountIDs(ctx context.Context, refreshToken string) ([]string, error) {
	accounts, err := s.googleAds.GetCustomerAccounts(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		ids = append(ids, acc.ID)
	}
	return ids, nil
}

// ToggleAccountVisibility alterna uma conta; a lista completa vem do Google Ads
// porque, sem preferência salva, todas as contas estão visíveis
func (s *Service) ToggleAccountVisibility(ctx context.Context, email, refreshToken, accountID string) (*VisibilityResult, error) {
	allIDs, err := s.accountIDs(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if !contains(allIDs, accountID) {
		return nil, NewPreferenceError(ErrUnknownAccount, apiErrors.ErrAccountNotFound, accountID)
	}

	prefs, err := s.GetPreferences(ctx, email)
	if err != nil {
		return nil, err
	}

	visible := domain.NewVisibleAccounts(allIDs, known(prefs.VisibleAccountIDs, allIDs))
	if !visible.Toggle(accountID) {
		return &VisibilityResult{Changed: false, VisibleAccountIDs: visible.IDs()}, nil
	}

	prefs.VisibleAccountIDs = visible.IDs()
	if err := s.save(ctx, prefs); err != nil {
		return nil, err
	}

	return &VisibilityResult{Changed: true, VisibleAccountIDs: prefs.VisibleAccountIDs}, nil
}

// SetAllAccountsVisible exibe todas as contas, ou somente a primeira quando visible é false
func (s *Service) SetAllAccountsVisible(ctx context.Context, email, refreshToken string, visible bool) (*VisibilityResult, error) {
	allIDs, err := s.accountIDs(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	prefs, err := s.GetPreferences(ctx, email)
	if err != nil {
		return nil, err
	}

	set := domain.NewVisibleAccounts(allIDs, known(prefs.VisibleAccountIDs, allIDs))
	if visible {
		set.SelectAll(allIDs)
	} else {
		set.DeselectAll(allIDs)
	}

	prefs.VisibleAccountIDs = set.IDs()
	if err := s.save(ctx, prefs); err != nil {
		return nil, err
	}

	return &VisibilityResult{Changed: true, VisibleAccountIDs: prefs.VisibleAccountIDs}, nil
}

// ApplyVisibility preenche as contas visíveis e os totais do resumo
func (s *Service) ApplyVisibility(ctx context.Context, email string, summary *domain.AccountsSummary) error {
	prefs, err := s.GetPreferences(ctx, email)
	if err != nil {
		return err
	}

	allIDs := make([]string, 0, len(summary.Accounts))
	for _, acc := range summary.Accounts {
		allIDs = append(allIDs, acc.ID)
	}

	visible := domain.NewVisibleAccounts(allIDs, known(prefs.VisibleAccountIDs, allIDs))
	totals := domain.ComputeVisibleTotals(summary.Accounts, visible)

	summary.VisibleAccountIDs = visible.IDs()
	summary.VisibleTotals = &totals
	return nil
}

// ResolveDateRange resolve um preset; "custom" exige as duas datas
func (s *Service) ResolveDateRange(id, startDate, endDate string) (*ResolvedDateRange, error) {
	if id == domain.DateRangeCustom {
		custom, err := domain.NewCustomDateRange(startDate, endDate)
		if err != nil {
			return nil, NewPreferenceError(err, apiErrors.ErrInvalidFormat, "")
		}
		return &ResolvedDateRange{ID: id, DateRange: custom}, nil
	}

	if !domain.IsKnownDateRange(id) {
		id = domain.DefaultDateRangeID
	}

	return &ResolvedDateRange{
		ID:        id,
		DateRange: domain.ResolveDateRange(id, s.now()),
	}, nil
}

func (s *Service) DateRangePresets() []domain.DateRangePreset {
	return domain.DateRangePresets()
}

// SelectClient devolve os clientes ativos e o escolhido; sem escolha válida
// o primeiro é selecionado e salvo
func (s *Service) SelectClient(ctx context.Context, email string) (*ClientSelection, error) {
	clients, err := s.tabler.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.GetPreferences(ctx, email)
	if err != nil {
		return nil, err
	}

	selected := domain.SelectClient(clients, prefs.SelectedClientID)
	if selected != nil && selected.ID != prefs.SelectedClientID {
		prefs.SelectedClientID = selected.ID
		if err := s.save(ctx, prefs); err != nil {
			logrus.WithError(err).WithField("user_email", email).Warn("preferring: cliente selecionado não foi salvo")
		}
	}

	return &ClientSelection{
		Clients:  clients,
		Selected: selected,
	}, nil
}

func contains(ids []string, id string) bool {
	for _, current := range ids {
		if current == id {
			return true
		}
	}
	return false
}

// known descarta contas salvas que não existem mais no Google Ads
func known(saved, all []string) []string {
	filtered := make([]string, 0, len(saved))
	for _, id := range saved {
		if contains(all, id) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
