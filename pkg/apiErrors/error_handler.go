package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos ao painel
const (
	// Erros de autenticação
	ErrNotAuthenticated  = "AUTH_001" // Sessão ausente ou sem credenciais Google Ads
	ErrInvalidToken      = "AUTH_002" // Cookie de sessão inválido
	ErrExpiredToken      = "AUTH_003" // Sessão expirada
	ErrInvalidOAuthState = "AUTH_004" // State do OAuth não confere
	ErrOAuthExchange     = "AUTH_005" // Falha ao trocar o code com o Google

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidTable        = "VAL_004" // Tabela NocoDB desconhecida
	ErrNothingToExclude    = "VAL_005" // Nenhum termo marcado para exclusão
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não aceito na rota

	// Recursos inexistentes
	ErrWorkflowNotFound = "NF_001" // Workflow desconhecido
	ErrAccountNotFound  = "NF_002" // Conta Google Ads não encontrada
	ErrRouteNotFound    = "NF_003" // Rota inexistente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrNotAuthenticated:    http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidOAuthState:   http.StatusBadRequest,
	ErrOAuthExchange:       http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidTable:        http.StatusBadRequest,
	ErrNothingToExclude:    http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrWorkflowNotFound:    http.StatusNotFound,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem exibida no painel
	Code    string `json:"code,omitempty"`    // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	writeJSON(w, StatusFor(code), APIError{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// WriteStatus escreve o erro com um status explícito, usado para espelhar
// o status devolvido por um serviço externo
func WriteStatus(w http.ResponseWriter, status int, message string, details any) {
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}

	writeJSON(w, status, APIError{
		Error:   message,
		Code:    ErrExternalService,
		Details: details,
	})
}

// WriteErrorFields escreve o erro acrescentando campos extras ao corpo
func WriteErrorFields(w http.ResponseWriter, code string, message string, fields map[string]any) {
	body := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		body[k] = v
	}
	body["error"] = message
	body["code"] = code

	writeJSON(w, StatusFor(code), body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Error: "Erreur inconnue",
			Code:  ErrInternalServer,
		}
	}

	return APIError{
		Error: err.Error(),
		Code:  code,
	}
}
