package domain

import "time"

// Session identifica a un visitante del formulario. La última predicción se
// retiene por sesión fuera del scorer.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
