package controllers

import (
	"net/http"
	"strconv"

	dbpkg "productlib/db"
	"productlib/store"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" is invalid", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// storeInstance wraps the request's db session; it answers 500 when absent.
func storeInstance(c *gin.Context) (*store.Store, bool) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "database not configured in context", http.StatusInternalServerError)
		return nil, false
	}
	return store.New(db), true
}
