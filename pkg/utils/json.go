package utils

import (
	"github.com/sirupsen/logrus"
)

const prettyIndent = "  "

// PrettyJson formata um valor para logs de depuração; []byte que não é JSON
// volta como texto
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", prettyIndent)
	if err != nil {
		logrus.WithError(err).Debug("utils: erro ao formatar JSON")
		return ""
	}

	return string(buffer)
}
