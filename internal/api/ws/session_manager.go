package ws

import "puyo-puyo/internal/shared"

type SessionManager interface {
	Frame(code string) (shared.Frame, error)
	Command(code string, name string) (shared.Frame, error)
}
