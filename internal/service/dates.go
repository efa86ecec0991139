package service

import "time"

const dateLayout = "2006-01-02"

// parseDate разбирает дату формата YYYY-MM-DD, nil проходит насквозь
func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
