package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// QueryInt читает целый query параметр. Отсутствующее или нечисловое значение дает 0.
func QueryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return 0
	}
	return n
}

// ResourceID возвращает id из пути {id}, иначе из query ?id=
func ResourceID(r *http.Request) string {
	if id := strings.TrimSpace(mux.Vars(r)["id"]); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get("id"))
}
