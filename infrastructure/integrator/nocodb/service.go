package nocodb

import (
	"context"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/nocodbclient"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// SearchTermsLimit segue o volume carregado pela tela de triagem
	SearchTermsLimit   = 500
	searchTermsSort    = "-CreatedAt"
	activeClientsWhere = "(active,eq,true)"
	maxParallelUpdates = 8
)

type NocoDBIntegrator interface {
	ListRecords(ctx context.Context, tableID string, params nocodbdomain.ListParams) (*nocodbdomain.ListResponse, error)
	CreateRecord(ctx context.Context, tableID string, data nocodbdomain.Record) (any, error)
	UpdateRecord(ctx context.Context, tableID string, id any, data nocodbdomain.Record) (any, error)
	ListSearchTerms(ctx context.Context, tableID string) ([]domain.SearchTermRecord, error)
	UpdateSearchTerms(ctx context.Context, tableID string, updates []domain.SearchTermUpdate) error
	ListClientConfigurations(ctx context.Context) ([]domain.ClientConfiguration, error)
}

type Integrator struct {
	cfg    *config.Config
	Client nocodbclient.Client
}

func New(cfg *config.Config, client nocodbclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) ListRecords(ctx context.Context, tableID string, params nocodbdomain.ListParams) (*nocodbdomain.ListResponse, error) {
	response, err := s.Client.ListRecords(ctx, tableID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "nocodb: erro ao listar a tabela %s", tableID)
	}

	logrus.WithFields(logrus.Fields{
		"table_id": tableID,
		"records":  len(response.List),
	}).Debug("nocodb: registros recuperados")

	return response, nil
}

func (s *Integrator) CreateRecord(ctx context.Context, tableID string, data nocodbdomain.Record) (any, error) {
	result, err := s.Client.CreateRecord(ctx, tableID, data)
	if err != nil {
		return nil, errors.Wrapf(err, "nocodb: erro ao criar registro na tabela %s", tableID)
	}

	return result, nil
}

// UpdateRecord atualiza um registro; o NocoDB espera uma lista de objetos com Id
func (s *Integrator) UpdateRecord(ctx context.Context, tableID string, id any, data nocodbdomain.Record) (any, error) {
	record := make(nocodbdomain.Record, len(data)+1)
	for key, value := range data {
		record[key] = value
	}
	record["Id"] = id

	result, err := s.Client.UpdateRecords(ctx, tableID, []nocodbdomain.Record{record})
	if err != nil {
		return nil, errors.Wrapf(err, "nocodb: erro ao atualizar o registro %v da tabela %s", id, tableID)
	}

	logrus.WithFields(logrus.Fields{
		"table_id":  tableID,
		"record_id": id,
	}).Info("nocodb: registro atualizado")

	return result, nil
}

// ListSearchTerms traz os termos de pesquisa mais recentes primeiro
func (s *Integrator) ListSearchTerms(ctx context.Context, tableID string) ([]domain.SearchTermRecord, error) {
	response, err := s.ListRecords(ctx, tableID, nocodbdomain.ListParams{
		Limit: SearchTermsLimit,
		Sort:  searchTermsSort,
	})
	if err != nil {
		return nil, err
	}

	terms, err := nocodbdomain.Decode[domain.SearchTermRecord](response.List)
	if err != nil {
		return nil, errors.Wrap(err, "nocodb: erro ao decodificar termos de pesquisa")
	}

	return terms, nil
}

// UpdateSearchTerms aplica os PATCH de status em paralelo; falha se qualquer um falhar
func (s *Integrator) UpdateSearchTerms(ctx context.Context, tableID string, updates []domain.SearchTermUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUpdates)

	for _, update := range updates {
		update := update
		g.Go(func() error {
			_, err := s.UpdateRecord(ctx, tableID, update.ID, update.Fields())
			return err
		})
	}

	return g.Wait()
}

// ListClientConfigurations lista os clientes ativos; sem tabela configurada devolve vazio
func (s *Integrator) ListClientConfigurations(ctx context.Context) ([]domain.ClientConfiguration, error) {
	tableID := s.cfg.NocoDB.ClientConfigurationTableID
	if tableID == "" {
		return []domain.ClientConfiguration{}, nil
	}

	response, err := s.ListRecords(ctx, tableID, nocodbdomain.ListParams{
		Where: activeClientsWhere,
	})
	if err != nil {
		return nil, err
	}

	clients, err := nocodbdomain.Decode[domain.ClientConfiguration](response.List)
	if err != nil {
		return nil, errors.Wrap(err, "nocodb: erro ao decodificar configurações de clientes")
	}

	active := make([]domain.ClientConfiguration, 0, len(clients))
	for _, client := range clients {
		if client.Active {
			active = append(active, client)
		}
	}

	return active, nil
}
