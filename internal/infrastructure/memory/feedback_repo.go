package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

var _ output.FeedbackRepository = (*FeedbackRepository)(nil)

type FeedbackRepository struct {
	mu     sync.RWMutex
	byPair map[pairKey]entities.Feedback
	order  []pairKey
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{byPair: make(map[pairKey]entities.Feedback)}
}

func (r *FeedbackRepository) Create(_ context.Context, feedback *entities.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{eventID: feedback.EventID, studentID: feedback.StudentID}
	if _, ok := r.byPair[key]; ok {
		return fmt.Errorf("create feedback (event=%s, student=%s): %w", key.eventID, key.studentID, output.ErrDuplicate)
	}
	if feedback.ID == "" {
		feedback.ID = "feedback-" + uuid.NewString()
	}
	r.byPair[key] = *feedback
	r.order = append(r.order, key)
	return nil
}

func (r *FeedbackRepository) FindByEventIDAndStudentID(_ context.Context, eventID, studentID string) (*entities.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byPair[pairKey{eventID: eventID, studentID: studentID}]
	if !ok {
		return nil, fmt.Errorf("get feedback (event=%s, student=%s): %w", eventID, studentID, output.ErrNotFound)
	}
	return &f, nil
}

func (r *FeedbackRepository) FindByEventID(_ context.Context, eventID string) ([]entities.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Feedback, 0)
	for _, key := range r.order {
		if key.eventID == eventID {
			out = append(out, r.byPair[key])
		}
	}
	return out, nil
}
