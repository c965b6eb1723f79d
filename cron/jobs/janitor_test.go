package jobs

import (
	"testing"
	"time"
)

func TestCartIdleTTL_Default(t *testing.T) {
	t.Setenv("CART_IDLE_TTL", "")
	if got := cartIdleTTL(); got != defaultCartIdleTTL {
		t.Errorf("cartIdleTTL = %v, want %v", got, defaultCartIdleTTL)
	}
}

func TestCartIdleTTL_FromEnv(t *testing.T) {
	t.Setenv("CART_IDLE_TTL", "45m")
	if got := cartIdleTTL(); got != 45*time.Minute {
		t.Errorf("cartIdleTTL = %v, want 45m", got)
	}
}

func TestCartIdleTTL_BadValueFallsBack(t *testing.T) {
	t.Setenv("CART_IDLE_TTL", "soon")
	if got := cartIdleTTL(); got != defaultCartIdleTTL {
		t.Errorf("cartIdleTTL = %v, want %v", got, defaultCartIdleTTL)
	}
}
