package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD; vazio retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
