package match

import "puyo-puyo/internal/game"

// SetSource replaces the piece generator and refills the queue from it.
func SetSource(s *Session, next func() *game.Piece) {
	s.next = next
	s.queue[0] = next()
	s.queue[1] = next()
}
