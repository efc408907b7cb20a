package utils

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MaxResponseBody limita o corpo lido das respostas de serviços externos
const MaxResponseBody = 4 << 20

func ReadBody(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return data, nil
}

func IsJSONContentType(header http.Header) bool {
	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// DecodeBody decodifica JSON quando o content-type indica; senão devolve {"message": texto}
func DecodeBody(header http.Header, body []byte) (any, error) {
	if IsJSONContentType(header) && len(body) > 0 {
		var decoded any
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
		return decoded, nil
	}

	return map[string]any{"message": string(body)}, nil
}
