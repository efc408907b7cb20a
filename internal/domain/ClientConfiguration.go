package domain

type ClientConfiguration struct {
	ID            int64  `json:"Id"`
	ClientName    string `json:"client_name"`
	CustomerID    string `json:"customer_id"`
	NocoDBBaseID  string `json:"nocodb_base_id"`
	NocoDBTableID string `json:"nocodb_table_id"`
	Active        bool   `json:"active"`
}

// SelectClient devolve o cliente escolhido ou, na falta dele, o primeiro da lista
func SelectClient(clients []ClientConfiguration, selectedID int64) *ClientConfiguration {
	if len(clients) == 0 {
		return nil
	}

	for i := range clients {
		if clients[i].ID == selectedID {
			return &clients[i]
		}
	}

	return &clients[0]
}
