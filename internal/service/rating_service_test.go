package service

import (
	"context"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"testing"
	"time"
)

func newRatingService(f *fixture) *RatingService {
	return NewRatingService(
		repository.NewRatingRepository(f.db),
		repository.NewFlashcardSetRepository(f.db),
		nil,
		time.Minute,
	)
}

func TestCreateRating(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "rated", model.SetPublic, 1)
	svc := newRatingService(f)
	ctx := context.Background()

	tests := []struct {
		name   string
		userID uint
		input  RatingInput
		want   error
	}{
		{name: "too low", userID: f.other.ID, input: RatingInput{SetID: set.ID, Rate: 0}, want: util.ErrInvalidRate},
		{name: "too high", userID: f.other.ID, input: RatingInput{SetID: set.ID, Rate: 6}, want: util.ErrInvalidRate},
		{name: "unknown set", userID: f.other.ID, input: RatingInput{SetID: 404, Rate: 3}, want: util.ErrSetNotFound},
		{name: "first rating", userID: f.other.ID, input: RatingInput{SetID: set.ID, Rate: 5}, want: nil},
		{name: "second rating", userID: f.other.ID, input: RatingInput{SetID: set.ID, Rate: 4}, want: util.ErrAlreadyRated},
		{name: "author rating", userID: f.user.ID, input: RatingInput{SetID: set.ID, Rate: 2}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.userID, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	summary, err := svc.Summary(ctx, f.other.ID, set.ID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.Count != 2 || summary.Average != 3.5 {
		t.Errorf("summary = %+v, want count 2 average 3.5", summary)
	}

	ratings, err := svc.List("rated")
	if err != nil || len(ratings) != 2 {
		t.Errorf("List() = %v, %v", ratings, err)
	}
	if ratings, _ := svc.List("other"); len(ratings) != 0 {
		t.Errorf("List(other) returned %d ratings", len(ratings))
	}
}

func TestRatingPrivateSet(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "hidden", model.SetPrivate, 1)
	svc := newRatingService(f)

	if _, err := svc.Create(context.Background(), f.other.ID, RatingInput{SetID: set.ID, Rate: 3}); !errors.Is(err, util.ErrSetNotFound) {
		t.Errorf("err = %v, want ErrSetNotFound", err)
	}
	summary, err := svc.Summary(context.Background(), f.user.ID, set.ID)
	if err != nil || summary.Count != 0 || summary.Average != 0 {
		t.Errorf("Summary() = %+v, %v", summary, err)
	}
}
