package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

type FeedbackService struct {
	mu     sync.Mutex
	stores Stores
	clock  Clock
}

func NewFeedbackService(stores Stores, clock Clock) *FeedbackService {
	return &FeedbackService{stores: stores, clock: clock}
}

// SubmitFeedback accepts one feedback per student and event, from students
// whose attendance was recorded. Comments are trimmed and capped at
// entities.MaxCommentsLength characters.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, session entities.Session, eventID string, rating int, comments string) (*entities.Feedback, error) {
	if rating < entities.MinRating || rating > entities.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stores.findStudent(ctx, session.StudentID); err != nil {
		return nil, err
	}
	event, err := s.stores.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	reg, err := s.stores.Registrations.FindByEventIDAndStudentID(ctx, event.ID, session.StudentID)
	if errors.Is(err, output.ErrNotFound) {
		return nil, domain.ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if !reg.Attended {
		return nil, domain.ErrNotAttended
	}
	_, err = s.stores.Feedback.FindByEventIDAndStudentID(ctx, event.ID, session.StudentID)
	if err == nil {
		return nil, domain.ErrFeedbackExists
	}
	if !errors.Is(err, output.ErrNotFound) {
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	feedback := &entities.Feedback{
		StudentID:   session.StudentID,
		EventID:     event.ID,
		Rating:      rating,
		Comments:    capComments(comments),
		SubmittedAt: s.clock.now(),
	}
	if err := s.stores.Feedback.Create(ctx, feedback); err != nil {
		if errors.Is(err, output.ErrDuplicate) {
			return nil, domain.ErrFeedbackExists
		}
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

func capComments(comments string) string {
	comments = strings.TrimSpace(comments)
	runes := []rune(comments)
	if len(runes) > entities.MaxCommentsLength {
		comments = strings.TrimSpace(string(runes[:entities.MaxCommentsLength]))
	}
	return comments
}
