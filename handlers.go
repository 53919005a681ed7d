package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"minefield/internal/board"
	"minefield/internal/logging"
	"minefield/internal/types"
)

// homeHandler renders the form pre-filled with a sample board.
func (app *App) homeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Minefield Annotator",
		"board": sampleBoard,
	})
}

// formHandler annotates the board posted from the home page form and renders
// the page again with either the result or the parse error.
func (app *App) formHandler(c *gin.Context) {
	reqID := requestID(c.Request.Context())
	data := gin.H{"title": "Minefield Annotator"}

	// PostForm hides parse errors, so an oversized body would look empty.
	if err := c.Request.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logging.WithRequest(reqID).Warnf("Rejected form: %v", err)
			data["error"] = ErrorBodyTooLarge
			c.HTML(http.StatusRequestEntityTooLarge, "index.html", data)
			return
		}
		data["error"] = err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	input := strings.TrimSpace(c.PostForm("board"))
	data["board"] = input
	if input == "" {
		data["error"] = ErrorEmptyBoard
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	g, err := board.Read(strings.NewReader(input))
	if err != nil {
		logging.WithRequest(reqID).Warnf("Rejected form board: %v", err)
		data["error"] = err.Error()
		c.HTML(http.StatusOK, "index.html", data)
		return
	}
	out := app.annotate(reqID, g)
	data["result"] = out.Lines()
	data["mines"] = out.Mines()
	c.HTML(http.StatusOK, "index.html", data)
}

// annotateHandler accepts either the plain-text board format or a JSON body
// of rows and answers in the same format.
func (app *App) annotateHandler(c *gin.Context) {
	reqID := requestID(c.Request.Context())
	isJSON := c.ContentType() == gin.MIMEJSON

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		status := http.StatusBadRequest
		msg := err.Error()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
			msg = ErrorBodyTooLarge
		}
		app.fail(c, isJSON, status, msg)
		return
	}

	if isJSON {
		app.annotateJSON(c, reqID, body)
		return
	}

	g, err := board.Read(bytes.NewReader(body))
	if err != nil {
		logging.WithRequest(reqID).Warnf("Rejected board: %v", err)
		app.fail(c, false, http.StatusBadRequest, err.Error())
		return
	}
	out := app.annotate(reqID, g)
	c.String(http.StatusOK, out.String()+"\n")
}

func (app *App) annotateJSON(c *gin.Context, reqID string, body []byte) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		app.fail(c, true, http.StatusBadRequest, "malformed JSON: "+err.Error())
		return
	}
	if err := app.RequestSchema.Validate(doc); err != nil {
		logging.WithRequest(reqID).Warnf("Request failed schema validation: %v", err)
		app.fail(c, true, http.StatusBadRequest, err.Error())
		return
	}

	var req types.AnnotateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		app.fail(c, true, http.StatusBadRequest, "malformed JSON: "+err.Error())
		return
	}
	g, err := board.FromRows(req.Rows)
	if err != nil {
		logging.WithRequest(reqID).Warnf("Rejected board: %v", err)
		app.fail(c, true, http.StatusBadRequest, err.Error())
		return
	}

	out := app.annotate(reqID, g)
	c.JSON(http.StatusOK, types.AnnotateResponse{
		Rows:      out.Lines(),
		Mines:     out.Mines(),
		RequestID: reqID,
	})
}

// annotate runs the annotation pass and records it.
func (app *App) annotate(reqID string, g *board.Grid) *board.Grid {
	start := time.Now()
	out := board.Annotate(g)
	app.Annotated.Add(1)
	logging.WithRequest(reqID).Infof("Annotated %dx%d grid (%d mines) in %v",
		out.Rows(), out.Cols(), out.Mines(), time.Since(start))
	return out
}

func (app *App) fail(c *gin.Context, isJSON bool, status int, msg string) {
	if isJSON {
		c.AbortWithStatusJSON(status, types.ErrorResponse{
			Error:     msg,
			RequestID: requestID(c.Request.Context()),
		})
		return
	}
	c.String(status, "Input error: %s\n", msg)
	c.Abort()
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       lo.Ternary(app.IsProduction, "production", "development"),
		"annotated": app.Annotated.Load(),
		"max_side":  board.MaxSide,
		"uptime":    formatUptime(uptime),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
