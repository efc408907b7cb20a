package domain

// VisibleAccounts é o conjunto de contas exibidas no painel.
// Nunca fica vazio quando há contas: ocultar a última é ignorado.
type VisibleAccounts struct {
	ids   map[string]struct{}
	order []string
}

// NewVisibleAccounts parte das contas salvas; sem preferência, todas ficam visíveis
func NewVisibleAccounts(allAccountIDs, savedIDs []string) *VisibleAccounts {
	v := &VisibleAccounts{ids: make(map[string]struct{})}

	if len(savedIDs) == 0 {
		for _, id := range allAccountIDs {
			v.add(id)
		}
		return v
	}

	for _, id := range savedIDs {
		v.add(id)
	}
	return v
}

func (v *VisibleAccounts) add(id string) {
	if _, ok := v.ids[id]; ok {
		return
	}
	v.ids[id] = struct{}{}
	v.order = append(v.order, id)
}

func (v *VisibleAccounts) remove(id string) {
	delete(v.ids, id)
	for i, current := range v.order {
		if current == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			return
		}
	}
}

func (v *VisibleAccounts) IsVisible(id string) bool {
	if v == nil {
		return true
	}
	_, ok := v.ids[id]
	return ok
}

// Toggle alterna a visibilidade; retorna false quando nada mudou
func (v *VisibleAccounts) Toggle(id string) bool {
	if _, ok := v.ids[id]; ok {
		if len(v.ids) <= 1 {
			return false
		}
		v.remove(id)
		return true
	}

	v.add(id)
	return true
}

func (v *VisibleAccounts) SelectAll(allAccountIDs []string) {
	for _, id := range allAccountIDs {
		v.add(id)
	}
}

// DeselectAll mantém somente a primeira conta visível
func (v *VisibleAccounts) DeselectAll(allAccountIDs []string) {
	if len(allAccountIDs) == 0 {
		return
	}

	v.ids = make(map[string]struct{})
	v.order = nil
	v.add(allAccountIDs[0])
}

func (v *VisibleAccounts) IDs() []string {
	ids := make([]string, len(v.order))
	copy(ids, v.order)
	return ids
}

func (v *VisibleAccounts) Len() int {
	return len(v.ids)
}
