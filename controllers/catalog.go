package controllers

import (
	"errors"
	"net/http"

	"productlib/middleware"
	"productlib/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /api/products?industry=&subject=
func (h *Handler) GetProducts(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	modules, err := s.FindModules(store.ModuleFilter{
		Industry: c.Query("industry"),
		Subject:  c.Query("subject"),
	})
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, moduleViews(modules, h.Conf.StaticPrefix))
}

// GET /api/products/:id
func (h *Handler) GetProductByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	module, err := s.FindModule(id)
	if errors.Is(err, store.ErrNotFound) {
		RespondError(c, "module not found", http.StatusNotFound)
		return
	}
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, NewModuleView(*module, h.Conf.StaticPrefix))
}

// GET /api/industries
func (h *Handler) GetIndustries(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	industries, err := s.DistinctIndustries()
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, nameViews(industries))
}

// GET /api/modules lists the distinct module subjects.
func (h *Handler) GetModules(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	subjects, err := s.DistinctSubjects()
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, nameViews(subjects))
}

// GET /api/cases
func (h *Handler) GetCases(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	cases, err := s.ListCases()
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, caseViews(cases, h.Conf.StaticPrefix))
}

// GET /api/partners
func (h *Handler) GetPartners(c *gin.Context) {
	s, ok := storeInstance(c)
	if !ok {
		return
	}
	partners, err := s.ListPartners()
	if err != nil {
		respondInternal(c, err)
		return
	}
	RespondSuccess(c, partnerViews(partners, h.Conf.StaticPrefix))
}

func respondInternal(c *gin.Context, err error) {
	middleware.Logger(c).Error("request failed", zap.Error(err))
	RespondError(c, err.Error(), http.StatusInternalServerError)
}
