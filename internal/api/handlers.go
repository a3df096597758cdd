package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/entity"
	"github.com/limbo/flowmotion/pkg/httputil"
)

func (s *Server) RegisterContext(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req entity.RegisterContextRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering context error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	pc, err := s.relayService.RegisterContext(ctx, req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidMessage) {
			logger.Error("registering context error: invalid page url")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid page url", err)
			return
		}
		logger.Error("registering context error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while registering context", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(pc)
	if err != nil {
		logger.Error("registering context error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entity.RegisterContextResponse{
		ID:    pc.ID,
		Token: token,
	})
	logger.Info("page context registered", slog.String("cid", pc.ID.String()))
}

func (s *Server) ListContexts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	pages, err := s.relayService.Contexts(ctx)
	if err != nil {
		logger.Error("listing contexts error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing page contexts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pages)
}

func (s *Server) CurrentContext(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	cid, err := GetCIDFromContext(r)
	if err != nil {
		logger.Error("current context error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	pc, err := s.relayService.Context(ctx, cid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPageContextNotFound) {
			logger.Error("current context error: unexist context")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "page context doesn't exist", nil)
			return
		}
		logger.Error("current context error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting page context", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pc)
}

// UnregisterContext removes the calling page context. Its token stops
// working with it.
func (s *Server) UnregisterContext(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	cid, err := GetCIDFromContext(r)
	if err != nil {
		logger.Error("unregistering context error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	if err := s.relayService.UnregisterContext(ctx, cid); err != nil {
		if errors.Is(err, errorvalues.ErrPageContextNotFound) {
			logger.Error("unregistering context error: unexist context")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "page context doesn't exist", nil)
			return
		}
		logger.Error("unregistering context error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while removing page context", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("page context unregistered")
}

// PostMessage hands a message to the worker. Accepted messages may still be
// dropped later, so the answer is 202.
func (s *Server) PostMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var msg entity.WorkerMessage
	if err := httputil.DecodeJSON(r, &msg); err != nil {
		logger.Error("post message error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Scheduling must outlive the request
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err := s.relayService.HandleMessage(ctx, msg)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkerNotReady):
			logger.Error("post message error: worker not ready")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "worker is not ready", nil)
		case errors.Is(err, errorvalues.ErrInvalidMessage):
			logger.Error("post message error: invalid message", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid message", err)
		default:
			logger.Error("post message error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling message", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, nil)
	logger.Info("message accepted", slog.String("type", msg.Type))
}

func (s *Server) ClickNotification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req entity.ClickRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || req.Tag == "" {
		logger.Error("click error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.relayService.HandleClick(ctx, req.Tag, req.Action)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("click error: unexist notification", slog.String("tag", req.Tag))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("click error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling click", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("notification clicked", slog.String("tag", req.Tag), slog.String("action", req.Action))
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.relayService.Active())
}
