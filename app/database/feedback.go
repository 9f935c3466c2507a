package database

import (
	"sort"
	"time"

	"mvpi-scorecard/app/models"
	"mvpi-scorecard/app/storage"

	"github.com/google/uuid"
)

// GetAllFeedback returns every feedback entry, newest first.
func GetAllFeedback(s storage.Store) ([]*models.Feedback, error) {
	entries, err := storage.LoadCollection[*models.Feedback](s, storage.KeyFeedback)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func CreateFeedback(s storage.Store, feedback *models.Feedback) error {
	entries, err := storage.LoadCollection[*models.Feedback](s, storage.KeyFeedback)
	if err != nil {
		return err
	}
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	feedback.CreatedAt = time.Now()
	feedback.Status = models.FeedbackNew
	entries = append(entries, feedback)
	return storage.SaveCollection(s, storage.KeyFeedback, entries)
}

func MarkFeedbackReviewed(s storage.Store, feedbackID string) error {
	entries, err := storage.LoadCollection[*models.Feedback](s, storage.KeyFeedback)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.ID == feedbackID {
			entry.Status = models.FeedbackReviewed
			return storage.SaveCollection(s, storage.KeyFeedback, entries)
		}
	}
	return ErrNotFound
}

func DeleteFeedback(s storage.Store, feedbackID string) error {
	entries, err := storage.LoadCollection[*models.Feedback](s, storage.KeyFeedback)
	if err != nil {
		return err
	}
	for i, entry := range entries {
		if entry.ID == feedbackID {
			entries = append(entries[:i], entries[i+1:]...)
			return storage.SaveCollection(s, storage.KeyFeedback, entries)
		}
	}
	return ErrNotFound
}
