package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("op", "bad input"), http.StatusBadRequest},
		{NotFound("op", "missing"), http.StatusNotFound},
		{Forbidden("op", 7, "nope"), http.StatusForbidden},
		{InvalidState("op", 3, "wrong state"), http.StatusConflict},
		{errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	err := Forbidden("room.Start", 42, "You are not owner").WithRoom(9)

	if !IsKind(err, KindForbidden) {
		t.Fatalf("expected forbidden kind")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("did not expect not found kind")
	}
	if IsKind(errors.New("plain"), KindForbidden) {
		t.Fatalf("plain error should not match any kind")
	}
}

func TestErrorFieldsSurviveWrapping(t *testing.T) {
	inner := InvalidState("room.Grade", 5, "Room status is not grading").WithActor(2)
	wrapped := fmt.Errorf("grading: %w", inner)

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatalf("expected errors.As to find *Error")
	}
	if appErr.RoomID != 5 || appErr.ActorID != 2 || appErr.Op != "room.Grade" {
		t.Fatalf("unexpected fields: %+v", appErr)
	}
	if appErr.Error() != "Room status is not grading" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
	if HTTPStatus(wrapped) != http.StatusConflict {
		t.Fatalf("expected wrapped error to keep its status")
	}
}
