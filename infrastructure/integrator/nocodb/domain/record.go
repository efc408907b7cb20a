package nocodbdomain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record é uma linha de tabela NocoDB sem esquema fixo
type Record map[string]any

type PageInfo struct {
	TotalRows   int  `json:"totalRows"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	IsFirstPage bool `json:"isFirstPage"`
	IsLastPage  bool `json:"isLastPage"`
}

type ListParams struct {
	Limit  int
	Offset int
	Sort   string
	Where  string
}

const (
	DefaultListLimit  = 100
	DefaultListOffset = 0
)

func (p ListParams) WithDefaults() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultListOffset
	}
	return p
}

type ListResponse struct {
	List     []Record  `json:"list"`
	PageInfo *PageInfo `json:"pageInfo,omitempty"`
}

// Decode converte as linhas para um tipo concreto passando pelo JSON
func Decode[T any](records []Record) ([]T, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}
