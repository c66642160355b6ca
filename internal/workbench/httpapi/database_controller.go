package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"edudb-server/internal/infra/httpserver"
	"edudb-server/internal/infra/sql"
	"edudb-server/internal/workbench/httpapi/internal"
	"edudb-server/internal/workbench/usecases"
)

const (
	connectionSuccessMessage = "Connection successful!"
	createSuccessMessage     = "Database created successfully with all tables and data!"
	resetSuccessMessage      = "Database reset to original sample data"
	insertSuccessMessage     = "Record inserted successfully"
	updateSuccessMessage     = "Record updated successfully"
	deleteSuccessMessage     = "Record deleted successfully"

	invalidBodyErrMessage  = "invalid request body"
	invalidTableErrMessage = "Invalid table name"
	invalidIDErrMessage    = "invalid record id"
)

func NewDatabaseController(service usecases.DatabaseService) *DatabaseController {
	return &DatabaseController{
		service: service,
	}
}

var _ httpserver.Controller = &DatabaseController{}

type DatabaseController struct {
	service usecases.DatabaseService
}

func (c *DatabaseController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/test-connection", c.testConnection())
	router.Handle("GET /api/check-database-status", c.checkStatus())
	router.Handle("POST /api/create-database", c.createDatabase())
	router.Handle("POST /api/reset-database", c.resetDatabase())
	router.Handle("GET /api/tables", c.listTables())
	router.Handle("GET /api/tables/{name}", c.readTable())
	router.Handle("POST /api/tables/{name}", c.insertRow())
	router.Handle("PUT /api/tables/{name}/{id}", c.updateRow())
	router.Handle("DELETE /api/tables/{name}/{id}", c.deleteRow())
	router.Handle("POST /api/execute-query", c.executeQuery())
}

func (c *DatabaseController) testConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CredentialsRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.service.TestConnection(r.Context(), body.ToDomain()); err != nil {
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{
				Message: "Connection failed: " + err.Error(),
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Success: true, Message: connectionSuccessMessage})
	}
}

func (c *DatabaseController) checkStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := c.service.CheckStatus(r.Context())
		if err != nil {
			slog.Error("checking database status", slog.String("error", err.Error()))
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToStatusResponse(status))
	}
}

func (c *DatabaseController) createDatabase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CredentialsRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		summary, err := c.service.CreateDatabase(r.Context(), body.ToDomain())
		if err != nil {
			slog.Error("creating database", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusOK,
				internal.ToCreateDatabaseResponse(summary, "Failed to create database: "+err.Error(), false))
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCreateDatabaseResponse(summary, createSuccessMessage, true))
	}
}

func (c *DatabaseController) resetDatabase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.ResetDatabase(r.Context()); err != nil {
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Message: err.Error()})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Success: true, Message: resetSuccessMessage})
	}
}

func (c *DatabaseController) listTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := c.service.ListTables(r.Context())
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if tables == nil {
			tables = []string{}
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.TablesResponse{Success: true, Tables: tables})
	}
}

func (c *DatabaseController) readTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := sql.ParsePage(httpserver.GetQueryParam(r, "limit"), httpserver.GetQueryParam(r, "offset"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := c.service.ReadTable(r.Context(), r.PathValue("name"), page)
		if err != nil {
			replyWithStoreError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableDataResponse(result))
	}
}

func (c *DatabaseController) insertRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record sql.Record
		if err := httpserver.DecodeJSONBody(r, &record); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		id, err := c.service.InsertRow(r.Context(), r.PathValue("name"), record)
		if err != nil {
			replyWithWriteError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.InsertResponse{Success: true, Message: insertSuccessMessage, ID: id})
	}
}

func (c *DatabaseController) updateRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, invalidIDErrMessage)
			return
		}

		var record sql.Record
		if err := httpserver.DecodeJSONBody(r, &record); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		affected, err := c.service.UpdateRow(r.Context(), r.PathValue("name"), id, record)
		if err != nil {
			replyWithWriteError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.UpdateResponse{
			Success:      true,
			Message:      updateSuccessMessage,
			AffectedRows: affected,
		})
	}
}

func (c *DatabaseController) deleteRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, invalidIDErrMessage)
			return
		}

		if err := c.service.DeleteRow(r.Context(), r.PathValue("name"), id); err != nil {
			replyWithWriteError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Success: true, Message: deleteSuccessMessage})
	}
}

func (c *DatabaseController) executeQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.QueryRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		rows, err := c.service.RunReadOnlyQuery(r.Context(), body.Query, body.Params)
		if err != nil {
			if errors.Is(err, usecases.ErrReadOnlyQuery) {
				httpserver.ReplyWithError(w, http.StatusBadRequest, usecases.ErrReadOnlyQuery.Error())
				return
			}
			replyWithWriteError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToQueryResponse(rows))
	}
}

// replyWithStoreError sends the user to the setup flow when the database is
// missing and answers 400 otherwise.
func replyWithStoreError(w http.ResponseWriter, err error) {
	if sql.IsProvisioningError(err) {
		httpserver.ReplyWithDatabaseMissing(w, sql.SetupHint)
		return
	}
	replyWithWriteError(w, err)
}

func replyWithWriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrInvalidIdentifier) {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidTableErrMessage)
		return
	}
	if sql.IsProvisioningError(err) {
		httpserver.ReplyWithError(w, http.StatusBadRequest, sql.SetupHint)
		return
	}
	slog.Warn("store request failed", slog.String("error", err.Error()))
	httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
}
