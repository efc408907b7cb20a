package domain

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNothingToExclude      = errors.New("aucun terme à exclure")
	ErrInvalidTermAction     = errors.New("action invalide")
	ErrInvalidExclusionLevel = errors.New("niveau d'exclusion invalide")
	ErrInvalidTriageView     = errors.New("filtre ou tri invalide")
	ErrStaleFetchGeneration  = errors.New("résultat de récupération obsolète")
)

type TriageFilter string

const (
	TriageFilterAll      TriageFilter = "all"
	TriageFilterPending  TriageFilter = "pending"
	TriageFilterExcluded TriageFilter = "excluded"
)

type TriageSortField string

const (
	SortBySearchTerm  TriageSortField = "search_term"
	SortByCost        TriageSortField = "cost"
	SortByClicks      TriageSortField = "clicks"
	SortByImpressions TriageSortField = "impressions"
	SortByConversions TriageSortField = "conversions"
	SortByROAS        TriageSortField = "roas"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type TriageStep string

const (
	TriageStepSelection TriageStep = "selection"
	TriageStepExclusion TriageStep = "exclusion"
)

type TriageView struct {
	Filter        TriageFilter    `json:"filter"`
	Query         string          `json:"query"`
	SortField     TriageSortField `json:"sortField"`
	SortDirection SortDirection   `json:"sortDirection"`
}

func DefaultTriageView() TriageView {
	return TriageView{
		Filter:        TriageFilterPending,
		SortField:     SortByCost,
		SortDirection: SortDesc,
	}
}

func (v TriageView) Validate() error {
	switch v.Filter {
	case TriageFilterAll, TriageFilterPending, TriageFilterExcluded:
	default:
		return ErrInvalidTriageView
	}

	switch v.SortField {
	case SortBySearchTerm, SortByCost, SortByClicks, SortByImpressions, SortByConversions, SortByROAS:
	default:
		return ErrInvalidTriageView
	}

	if v.SortDirection != SortAsc && v.SortDirection != SortDesc {
		return ErrInvalidTriageView
	}

	return nil
}

type TriageItem struct {
	SearchTermRecord
	Action   TermAction `json:"action"`
	Selected bool       `json:"selected"`
}

type TriageStats struct {
	Pending          int     `json:"pending"`
	Excluded         int     `json:"excluded"`
	ToExclude        int     `json:"toExclude"`
	ToKeep           int     `json:"toKeep"`
	PotentialSavings float64 `json:"potentialSavings"`
}

type TriageSnapshot struct {
	Items          []TriageItem   `json:"items"`
	Stats          TriageStats    `json:"stats"`
	View           TriageView     `json:"view"`
	Step           TriageStep     `json:"step"`
	ExclusionLevel ExclusionLevel `json:"exclusionLevel"`
	SelectedCount  int            `json:"selectedCount"`
	TableID        string         `json:"tableId,omitempty"`
	Generation     uint64         `json:"generation"`
}

// TriageWorkspace guarda o estado de triagem de termos de uma sessão.
// Toda leitura de registros passa por BeginFetch/ApplyFetch; um resultado
// com geração anterior à última emitida é descartado.
type TriageWorkspace struct {
	mu sync.Mutex

	records        []SearchTermRecord
	actions        map[int64]TermAction
	selected       map[int64]struct{}
	view           TriageView
	step           TriageStep
	exclusionLevel ExclusionLevel
	tableID        string

	generation        uint64
	appliedGeneration uint64
}

func NewTriageWorkspace() *TriageWorkspace {
	return &TriageWorkspace{
		actions:        make(map[int64]TermAction),
		selected:       make(map[int64]struct{}),
		view:           DefaultTriageView(),
		step:           TriageStepSelection,
		exclusionLevel: DefaultExclusionLevel,
	}
}

// BeginFetch emite um novo token de geração para uma leitura
func (w *TriageWorkspace) BeginFetch() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	return w.generation
}

// ApplyFetch aplica os registros somente se a geração ainda for a mais recente
func (w *TriageWorkspace) ApplyFetch(generation uint64, tableID string, records []SearchTermRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if generation != w.generation {
		return ErrStaleFetchGeneration
	}

	w.records = records
	w.tableID = tableID
	w.appliedGeneration = generation
	return nil
}

func (w *TriageWorkspace) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.appliedGeneration
}

func (w *TriageWorkspace) TableID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tableID
}

func (w *TriageWorkspace) SetView(view TriageView) error {
	if err := view.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.view = view
	return nil
}

// SetAction define (ou remove, com TermActionNone) a ação de um termo
func (w *TriageWorkspace) SetAction(id int64, action TermAction) error {
	if !action.IsValid() {
		return ErrInvalidTermAction
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.setAction(id, action)
	return nil
}

func (w *TriageWorkspace) setAction(id int64, action TermAction) {
	if action == TermActionNone {
		delete(w.actions, id)
		return
	}
	w.actions[id] = action
}

func (w *TriageWorkspace) ToggleSelect(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.selected[id]; ok {
		delete(w.selected, id)
		return
	}
	w.selected[id] = struct{}{}
}

// ToggleSelectAll seleciona todos os termos visíveis, ou limpa a seleção
// quando ela já cobre exatamente a lista visível
func (w *TriageWorkspace) ToggleSelectAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	visible := w.visibleRecords()
	if len(w.selected) == len(visible) {
		w.selected = make(map[int64]struct{})
		return
	}

	w.selected = make(map[int64]struct{}, len(visible))
	for _, r := range visible {
		w.selected[r.ID] = struct{}{}
	}
}

// ApplyActionToSelected aplica a ação a todos os selecionados e limpa a seleção
func (w *TriageWorkspace) ApplyActionToSelected(action TermAction) (int, error) {
	if !action.IsValid() {
		return 0, ErrInvalidTermAction
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	count := len(w.selected)
	for id := range w.selected {
		w.setAction(id, action)
	}
	w.selected = make(map[int64]struct{})
	return count, nil
}

// MarkAllNonRelevantAsExclude marca como "exclude" os termos visíveis que a
// análise considerou não pertinentes e que ainda não foram excluídos
func (w *TriageWorkspace) MarkAllNonRelevantAsExclude() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	marked := 0
	for _, r := range w.visibleRecords() {
		if !r.IsRelevant && !r.IsExcluded() {
			w.actions[r.ID] = TermActionExclude
			marked++
		}
	}
	return marked
}

func (w *TriageWorkspace) SetExclusionLevel(level ExclusionLevel) error {
	if !level.IsValid() {
		return ErrInvalidExclusionLevel
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.exclusionLevel = level
	return nil
}

// ProceedToExclusion avança para a etapa de escolha do escopo
func (w *TriageWorkspace) ProceedToExclusion() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.termsToExclude()) == 0 {
		return ErrNothingToExclude
	}
	w.step = TriageStepExclusion
	return nil
}

func (w *TriageWorkspace) BackToSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = TriageStepSelection
}

// TermsToExclude retorna os termos marcados como "exclude", na ordem da tabela
func (w *TriageWorkspace) TermsToExclude() []SearchTermRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.termsToExclude()
}

func (w *TriageWorkspace) termsToExclude() []SearchTermRecord {
	terms := make([]SearchTermRecord, 0)
	for _, r := range w.records {
		if w.actions[r.ID] == TermActionExclude {
			terms = append(terms, r)
		}
	}
	return terms
}

// BuildExclusionRequest monta o payload do workflow com os termos a excluir
func (w *TriageWorkspace) BuildExclusionRequest(level ExclusionLevel) (*ExclusionRequest, error) {
	if !level.IsValid() {
		return nil, ErrInvalidExclusionLevel
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	toExclude := w.termsToExclude()
	if len(toExclude) == 0 {
		return nil, ErrNothingToExclude
	}

	terms := make([]ExclusionTerm, 0, len(toExclude))
	names := make([]string, 0, len(toExclude))
	savings := 0.0
	for _, r := range toExclude {
		term := NewExclusionTerm(r)
		terms = append(terms, term)
		names = append(names, term.SearchTerm)
		savings += term.Cost
	}

	return &ExclusionRequest{
		Payload: ExclusionPayload{
			Action:         ApplyExclusionsAction,
			ExclusionLevel: level,
			TermsToExclude: terms,
			TotalCount:     len(terms),
		},
		Savings: savings,
		Terms:   names,
	}, nil
}

// Reset limpa ações, seleção e etapa após uma submissão bem-sucedida
func (w *TriageWorkspace) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.actions = make(map[int64]TermAction)
	w.selected = make(map[int64]struct{})
	w.step = TriageStepSelection
}

// ClearSubmitted libera os termos já enviados ao workflow. Ações alteradas
// depois da montagem do payload, inclusive em outros termos, são mantidas.
func (w *TriageWorkspace) ClearSubmitted(ids []int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range ids {
		if w.actions[id] == TermActionExclude {
			delete(w.actions, id)
		}
		delete(w.selected, id)
	}
	w.step = TriageStepSelection
}

func (w *TriageWorkspace) Stats() TriageStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats()
}

func (w *TriageWorkspace) stats() TriageStats {
	var stats TriageStats
	for _, r := range w.records {
		if r.IsExcluded() {
			stats.Excluded++
		} else {
			stats.Pending++
		}

		switch w.actions[r.ID] {
		case TermActionExclude:
			stats.ToExclude++
			stats.PotentialSavings += r.Cost
		case TermActionKeep:
			stats.ToKeep++
		}
	}
	return stats
}

// Snapshot devolve a lista visível já filtrada e ordenada
func (w *TriageWorkspace) Snapshot() TriageSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	visible := w.visibleRecords()
	items := make([]TriageItem, 0, len(visible))
	for _, r := range visible {
		_, selected := w.selected[r.ID]
		items = append(items, TriageItem{
			SearchTermRecord: r,
			Action:           w.actions[r.ID],
			Selected:         selected,
		})
	}

	return TriageSnapshot{
		Items:          items,
		Stats:          w.stats(),
		View:           w.view,
		Step:           w.step,
		ExclusionLevel: w.exclusionLevel,
		SelectedCount:  len(w.selected),
		TableID:        w.tableID,
		Generation:     w.appliedGeneration,
	}
}

func (w *TriageWorkspace) visibleRecords() []SearchTermRecord {
	query := strings.ToLower(w.view.Query)

	visible := make([]SearchTermRecord, 0, len(w.records))
	for _, r := range w.records {
		matchesSearch := strings.Contains(strings.ToLower(r.SearchTerm), query) ||
			strings.Contains(strings.ToLower(r.Reason), query)
		if !matchesSearch {
			continue
		}

		switch w.view.Filter {
		case TriageFilterPending:
			if r.IsExcluded() {
				continue
			}
		case TriageFilterExcluded:
			if !r.IsExcluded() {
				continue
			}
		}

		visible = append(visible, r)
	}

	field := w.view.SortField
	asc := w.view.SortDirection == SortAsc
	sort.SliceStable(visible, func(i, j int) bool {
		if field == SortBySearchTerm {
			cmp := strings.Compare(visible[i].SearchTerm, visible[j].SearchTerm)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		}

		a, b := sortValue(visible[i], field), sortValue(visible[j], field)
		if asc {
			return a < b
		}
		return a > b
	})

	return visible
}

func sortValue(r SearchTermRecord, field TriageSortField) float64 {
	switch field {
	case SortByClicks:
		return float64(r.Clicks)
	case SortByImpressions:
		return float64(r.Impressions)
	case SortByConversions:
		return r.Conversions
	case SortByROAS:
		return r.ROAS
	}
	return r.Cost
}
