package rest

import (
	"net/http"
	"strconv"
	"strings"
)

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := queryString(r, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badRequest("%s must be a number", name)
	}
	return v, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := queryString(r, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, badRequest("%s must be an integer", name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := queryString(r, name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest("%s must be true or false", name)
	}
	return v, nil
}
