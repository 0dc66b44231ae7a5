package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/rbac"
)

// sessionState хранит единственную активную сессию пользователя.
// Система моделирует одного активного пользователя, повторный вход
// заменяет предыдущую сессию.
type sessionState struct {
	mu      sync.RWMutex
	current *model.Session
}

func newSessionState() *sessionState {
	return &sessionState{}
}

func (st *sessionState) set(s model.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = &s
}

func (st *sessionState) clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = nil
}

func (st *sessionState) get() (model.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.current == nil {
		return model.Session{}, false
	}
	return *st.current, true
}

// Login выполняет демонстрационный вход: проверяются только заполненность
// полей и минимальная длина пароля, внешней проверки учётных данных нет.
// Повторная отправка формы во время обработки получает результат первого вызова.
func (s *Service) Login(ctx context.Context, username, password, role string) (model.Session, error) {
	if strings.TrimSpace(username) == "" {
		return model.Session{}, ErrMissingUsername
	}
	if strings.TrimSpace(password) == "" {
		return model.Session{}, ErrMissingPassword
	}
	if len(password) < 4 {
		return model.Session{}, ErrPasswordTooShort
	}

	parsed, ok := rbac.ParseRole(role)
	if !ok {
		return model.Session{}, ErrUnknownRole
	}

	sess, err, _ := s.sf.Do("login:"+username, func() (interface{}, error) {
		s.simulateLatency()

		session := model.Session{
			ID:          uuid.NewString(),
			Username:    username,
			Role:        parsed,
			DisplayName: username,
		}
		s.sessions.set(session)

		s.logger.Info("user logged in",
			zap.String("username", username),
			zap.String("role", string(parsed)))

		return session, nil
	})
	if err != nil {
		return model.Session{}, err
	}
	return sess.(model.Session), nil
}

// Logout завершает текущую сессию. Отсутствие активной сессии не является ошибкой.
func (s *Service) Logout(ctx context.Context) {
	s.sessions.clear()
}

// CurrentSession возвращает активную сессию, если пользователь вошёл в систему.
func (s *Service) CurrentSession(ctx context.Context) (model.Session, bool) {
	return s.sessions.get()
}

// SessionByID возвращает активную сессию с указанным идентификатором.
// Используется middleware для проверки cookie авторизации.
func (s *Service) SessionByID(id string) (model.Session, bool) {
	sess, ok := s.sessions.get()
	if !ok || sess.ID != id {
		return model.Session{}, false
	}
	return sess, true
}
