package statemachine

import (
	"testing"

	"cafe-counter-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{name: "place draft", from: models.StatusDraft, to: models.StatusPlaced, wantErr: false},
		{name: "discard draft", from: models.StatusDraft, to: models.StatusCanceled, wantErr: false},
		{name: "cancel placed order", from: models.StatusPlaced, to: models.StatusCanceled, wantErr: false},
		{name: "placed back to draft", from: models.StatusPlaced, to: models.StatusDraft, wantErr: true},
		{name: "canceled is terminal", from: models.StatusCanceled, to: models.StatusPlaced, wantErr: true},
		{name: "no self loop", from: models.StatusDraft, to: models.StatusDraft, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("CanTransition(%s, %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	if got := ValidTransitionsFrom(models.StatusDraft); len(got) != 2 {
		t.Errorf("ValidTransitionsFrom(DRAFT) = %v, want 2 states", got)
	}
	if got := ValidTransitionsFrom(models.StatusCanceled); len(got) != 0 {
		t.Errorf("ValidTransitionsFrom(CANCELED) = %v, want none", got)
	}
}
