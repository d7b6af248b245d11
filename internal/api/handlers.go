package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/palette"
	"hexbot-palette/internal/session"
	"hexbot-palette/internal/ui"
)

type hexRequest struct {
	Hex string `json:"hex"`
}

type labelRequest struct {
	Label string `json:"label" binding:"required"`
}

// DeriveResponse is the payload of GET /derive/:hex
type DeriveResponse struct {
	Base     string           `json:"base"`
	Contrast colour.Contrast  `json:"contrast"`
	Related  []colour.Derived `json:"related"`
}

func (a *API) getColour(c *gin.Context) {
	OK(c, a.sess.View())
}

func (a *API) randomColour(c *gin.Context) {
	view, err := a.sess.Refresh(c.Request.Context())
	if err != nil {
		FailWith(c, http.StatusBadGateway, err.Error(), view)
		return
	}
	OK(c, view)
}

func (a *API) setBase(c *gin.Context) {
	var req hexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	col, err := colour.Parse(req.Hex)
	if err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	OK(c, a.sess.SetBase(col))
}

func (a *API) selectRelated(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	view, err := a.sess.Select(req.Label)
	if err != nil {
		a.failSession(c, err, view)
		return
	}
	OK(c, view)
}

func (a *API) derive(c *gin.Context) {
	col, err := pathColour(c)
	if err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	OK(c, DeriveResponse{
		Base:     col.Hex(),
		Contrast: colour.ContrastOf(col),
		Related:  colour.DeriveRelated(col),
	})
}

func (a *API) listPalette(c *gin.Context) {
	OK(c, a.sess.Saved())
}

// savePalette adds the posted colour, or the current base when the body is
// empty.
func (a *API) savePalette(c *gin.Context) {
	var req hexRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var (
		view session.View
		err  error
	)
	if strings.TrimSpace(req.Hex) == "" {
		view, err = a.sess.SaveBase()
	} else {
		col, perr := colour.Parse(req.Hex)
		if perr != nil {
			Fail(c, http.StatusBadRequest, perr.Error())
			return
		}
		view, err = a.sess.Save(col)
	}
	if err != nil {
		a.failSession(c, err, view)
		return
	}
	OK(c, view)
}

func (a *API) removePalette(c *gin.Context) {
	col, err := pathColour(c)
	if err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	view, err := a.sess.Remove(col)
	if err != nil {
		a.failSession(c, err, view)
		return
	}
	OK(c, view)
}

// pathColour reads the :hex parameter, with or without the leading '#'.
func pathColour(c *gin.Context) (colour.Colour, error) {
	raw := strings.TrimPrefix(c.Param("hex"), "#")
	return colour.Parse("#" + raw)
}

func (a *API) failSession(c *gin.Context, err error, view session.View) {
	var perr *palette.PersistenceError
	switch {
	case errors.As(err, &perr):
		ui.LogStatus("error", "API: "+err.Error())
		FailWith(c, http.StatusInternalServerError, err.Error(), view)
	case errors.Is(err, session.ErrNoBase):
		FailWith(c, http.StatusConflict, err.Error(), view)
	case errors.Is(err, session.ErrUnknownLabel):
		FailWith(c, http.StatusBadRequest, err.Error(), view)
	default:
		FailWith(c, http.StatusInternalServerError, err.Error(), view)
	}
}
