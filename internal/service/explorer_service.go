package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"ai-subject-explorer-be/internal/dto"
	"ai-subject-explorer-be/internal/pkg/apperr"
	"ai-subject-explorer-be/internal/pkg/logger"
	"ai-subject-explorer-be/internal/repository/contract"
	"ai-subject-explorer-be/pkg/generator"
	"ai-subject-explorer-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	minMenuDepth = 2
	maxMenuDepth = 4

	logModule = "explorer"
)

// IExplorerService defines the topic exploration navigation interface
type IExplorerService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.MenuResponse, error)
	SelectMenuItem(ctx context.Context, req *dto.MenuSelectionRequest) (*dto.MenuResponse, error)
	ReturnToMainMenu(ctx context.Context, req *dto.SessionRequest) (*dto.MenuResponse, error)
	GoBack(ctx context.Context, req *dto.SessionRequest) (*dto.MenuResponse, error)
}

// explorerService is the navigation state machine. Session state is only
// committed after a successful generator call, so a failed request leaves
// the session exactly as it was and the user can retry the same action.
type explorerService struct {
	sessionRepo contract.SessionRepository
	generator   generator.ContentGenerator
	logger      logger.ILogger
}

func NewExplorerService(
	sessionRepo contract.SessionRepository,
	contentGenerator generator.ContentGenerator,
	sysLogger logger.ILogger,
) IExplorerService {
	return &explorerService{
		sessionRepo: sessionRepo,
		generator:   contentGenerator,
		logger:      sysLogger,
	}
}

// CreateSession generates the root menu for a topic and opens a session at
// depth 0.
func (s *explorerService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.MenuResponse, error) {
	mainMenu, err := s.generator.MainMenu(ctx, req.Topic)
	if err != nil {
		return nil, s.mapGeneratorError("main menu generation failed", err)
	}

	items := generator.NormalizeItems(mainMenu.Categories)
	if len(items) == 0 {
		return nil, apperr.New(apperr.CodeAIBadResponse, fiber.StatusBadGateway,
			"ai returned an empty main menu")
	}

	session := &store.Session{
		ID:           uuid.NewString(),
		Topic:        req.Topic,
		MaxMenuDepth: clampMenuDepth(mainMenu.MaxMenuDepth),
		CurrentDepth: 0,
		CurrentMenu:  items,
		History:      []store.HistoryEntry{store.TopicEntry(req.Topic)},
		MenuByDepth:  map[int][]string{0: items},
	}
	s.sessionRepo.Save(session)

	s.logger.Info(logModule, "session created", map[string]interface{}{
		"session_id":     session.ID,
		"topic":          session.Topic,
		"max_menu_depth": session.MaxMenuDepth,
		"menu_size":      len(items),
	})

	return menuResponse(session), nil
}

// SelectMenuItem advances one level: a submenu while nextDepth is below the
// menu depth limit, content plus further topics from the limit onward.
// Selections past the limit keep producing content indefinitely.
func (s *explorerService) SelectMenuItem(ctx context.Context, req *dto.MenuSelectionRequest) (*dto.MenuResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, apperr.SessionNotFound(req.SessionId)
	}

	session.Lock()
	defer session.Unlock()

	if !slices.Contains(session.CurrentMenu, req.Selection) {
		return nil, apperr.InvalidSelection(req.Selection)
	}

	nextDepth := session.CurrentDepth + 1

	if nextDepth < session.MaxMenuDepth {
		items, err := s.generator.Submenu(ctx, session.Topic, req.Selection)
		if err != nil {
			return nil, s.mapGeneratorError("submenu generation failed", err)
		}
		items = generator.NormalizeItems(items)
		if len(items) == 0 {
			return nil, apperr.New(apperr.CodeAIBadResponse, fiber.StatusBadGateway,
				"ai returned an empty submenu")
		}

		session.History = append(session.History, store.SelectionEntry(req.Selection))
		session.CurrentDepth = nextDepth
		session.CurrentMenu = items
		session.LastContent = ""
		session.MenuByDepth[nextDepth] = items
		s.sessionRepo.Save(session)

		s.logger.Info(logModule, "submenu selected", map[string]interface{}{
			"session_id": session.ID,
			"selection":  req.Selection,
			"depth":      nextDepth,
		})

		return menuResponse(session), nil
	}

	content, err := s.generator.Content(ctx, session.Topic, session.NavigationPath(), req.Selection)
	if err != nil {
		return nil, s.mapGeneratorError("content generation failed", err)
	}
	topics := generator.NormalizeItems(content.FurtherTopics)
	if content.Markdown == "" || len(topics) == 0 {
		return nil, apperr.New(apperr.CodeAIBadResponse, fiber.StatusBadGateway,
			"ai returned empty content")
	}

	session.History = append(session.History, store.SelectionEntry(req.Selection))
	session.CurrentDepth = nextDepth
	session.CurrentMenu = topics
	session.LastContent = content.Markdown
	session.MenuByDepth[nextDepth] = topics
	s.sessionRepo.Save(session)

	s.logger.Info(logModule, "content generated", map[string]interface{}{
		"session_id": session.ID,
		"selection":  req.Selection,
		"depth":      nextDepth,
	})

	return menuResponse(session), nil
}

// ReturnToMainMenu resets the session to the cached root menu. Idempotent.
func (s *explorerService) ReturnToMainMenu(_ context.Context, req *dto.SessionRequest) (*dto.MenuResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, apperr.SessionNotFound(req.SessionId)
	}

	session.Lock()
	defer session.Unlock()

	rootMenu, ok := session.MenuByDepth[0]
	if !ok {
		// Root menu is cached for the session lifetime; keep the current
		// menu rather than failing if that ever breaks.
		s.logger.Warn(logModule, "root menu missing from cache", map[string]interface{}{
			"session_id": session.ID,
		})
		rootMenu = session.CurrentMenu
	}

	session.CurrentDepth = 0
	session.CurrentMenu = rootMenu
	session.LastContent = ""
	session.History = []store.HistoryEntry{store.TopicEntry(session.Topic)}
	s.sessionRepo.Save(session)

	return menuResponse(session), nil
}

// GoBack steps one level up using the cached menu for that depth, so the
// user sees exactly the menu they saw before. No generator call is made.
func (s *explorerService) GoBack(_ context.Context, req *dto.SessionRequest) (*dto.MenuResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, apperr.SessionNotFound(req.SessionId)
	}

	session.Lock()
	defer session.Unlock()

	if session.CurrentDepth == 0 {
		return nil, apperr.AtRootLevel()
	}

	prevDepth := session.CurrentDepth - 1
	menu, ok := session.MenuByDepth[prevDepth]
	if !ok {
		return nil, apperr.StateInconsistent(
			fmt.Sprintf("no cached menu for depth %d", prevDepth))
	}

	if last := len(session.History) - 1; last >= 0 && session.History[last].Kind == store.HistorySelection {
		session.History = session.History[:last]
	}
	session.CurrentDepth = prevDepth
	session.CurrentMenu = menu
	session.LastContent = ""
	s.sessionRepo.Save(session)

	s.logger.Info(logModule, "went back", map[string]interface{}{
		"session_id": session.ID,
		"depth":      prevDepth,
	})

	return menuResponse(session), nil
}

// clampMenuDepth bounds the model-chosen depth to [2,4]; missing or invalid
// values fall back to 2.
func clampMenuDepth(depth int) int {
	if depth < minMenuDepth {
		return minMenuDepth
	}
	if depth > maxMenuDepth {
		return maxMenuDepth
	}
	return depth
}

func menuResponse(session *store.Session) *dto.MenuResponse {
	resp := &dto.MenuResponse{
		Type:         dto.MenuTypeSubmenu,
		MenuItems:    session.CurrentMenu,
		SessionId:    session.ID,
		CurrentDepth: session.CurrentDepth,
		MaxMenuDepth: session.MaxMenuDepth,
	}
	if session.LastContent != "" {
		resp.Type = dto.MenuTypeContent
		resp.Content = session.LastContent
	}
	return resp
}

// mapGeneratorError translates the generator taxonomy into client-facing
// codes: unavailable/auth are not retryable, rate-limit/connection are
// retryable with backoff, bad-response/api indicate a backend problem.
func (s *explorerService) mapGeneratorError(message string, err error) error {
	s.logger.Error(logModule, message, map[string]interface{}{
		"error": err.Error(),
	})

	var genErr *generator.Error
	if !errors.As(err, &genErr) {
		return apperr.Wrap(apperr.CodeInternal, fiber.StatusInternalServerError, message, err)
	}

	switch genErr.Kind {
	case generator.KindUnavailable:
		return apperr.Wrap(apperr.CodeAIUnavailable, fiber.StatusServiceUnavailable,
			"ai service is unavailable", err)
	case generator.KindAuth:
		return apperr.Wrap(apperr.CodeAIAuthError, fiber.StatusBadGateway,
			"ai service rejected credentials", err)
	case generator.KindRateLimited:
		return apperr.Wrap(apperr.CodeAIRateLimited, fiber.StatusTooManyRequests,
			"ai service rate limited, retry later", err)
	case generator.KindConnection:
		return apperr.Wrap(apperr.CodeAIConnectionError, fiber.StatusGatewayTimeout,
			"could not reach ai service, retry later", err)
	case generator.KindBadResponse:
		return apperr.Wrap(apperr.CodeAIBadResponse, fiber.StatusBadGateway,
			"ai returned an unusable response", err)
	default:
		return apperr.Wrap(apperr.CodeAIAPIError, fiber.StatusBadGateway,
			"ai service returned an error", err)
	}
}
